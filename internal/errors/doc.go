// Package apperrors holds the error classes of partviz and the exit codes
// they map to. Configuration and validation errors come from flag parsing,
// SortError from a failed run, and PreconditionError is only ever a panic
// payload raised by the sorting core. Wrapping types implement Unwrap so the
// cause stays visible to errors.Is and errors.As.
package apperrors
