// Package result provides Result, the outcome of an operation that either
// succeeded with a value (Ok) or failed with an error value (Err).
//
// The error type E is unconstrained. Result[T, error] bridges with Go's
// (T, error) convention through FromPair and Pair, and Catch is the single
// place where a panic is turned into an Err value.
//
//	r := result.Catch(func() int { return it.Unwrap() })
//	if r.IsErr() {
//	    log.Warn("extraction failed", logger.Fields("error", r.UnwrapErr()))
//	}
package result
