// Package errs provides the typed errors shared by the storefront domain,
// use cases and adapters.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrVersionIsInvalid) with a struct
// carrying the offending parameter. The structs unwrap to their sentinel so callers
// classify failures with errors.Is, and the HTTP adapter maps them to status codes:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return c.JSON(http.StatusNotFound, ...)
//	}
package errs
