// Package catalog holds the vendor and product reference data that checkout and
// invoice generation read from.
package catalog
