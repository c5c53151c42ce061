// Package errs holds the error types shared by the domain model and the adapters.
//
// Each type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the offending
// parameter; ValueIsInvalidError may also carry the underlying cause. Unwrap returns
// the sentinel, so callers classify failures with errors.Is and adapters map them to
// transport status codes.
package errs
