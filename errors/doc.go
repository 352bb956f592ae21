// Package errors provides the structured error type shared by gomonad packages.
// Precondition violations, unwrap misuse and recovered panics are all reported
// as *AppError values carrying a machine-readable code.
package errors
