// Package cart models a shopper's cart as a value owned by one session, so no
// cart state is shared between requests except through the cart store.
package cart
