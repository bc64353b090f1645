// Package errs defines the error types returned by repositories and
// builders.
//
// Every error carries a stable machine-readable Code and unwraps to its
// cause, so callers can switch on the kind with errors.Is / errors.As and
// still reach the driver error underneath.
package errs
