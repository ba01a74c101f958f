package apperrors

import "fmt"

// Process exit statuses.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3 // runs disagree or a result is not sorted
	ExitErrorConfig   = 4
	ExitErrorCanceled = 130 // SIGINT convention
)

// ConfigError reports an unusable combination of flags or values.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError reports a malformed value for a single field, such as an
// --input entry that is not an integer.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SortError tags the failure of one run with its partition scheme. The cause
// is the error the visualization sink returned from a suspension point,
// normally the cancellation of its context.
type SortError struct {
	Scheme string
	Cause  error
}

func (e SortError) Error() string {
	return fmt.Sprintf("%s run: %v", e.Scheme, e.Cause)
}

func (e SortError) Unwrap() error { return e.Cause }

// PreconditionError describes a programmer error inside the sorting core:
// an index outside the sequence, a malformed range or an empty input. It is
// raised with panic, never returned.
type PreconditionError struct {
	Op      string
	Message string
}

func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Message)
}

// Preconditionf panics with a PreconditionError for op.
func Preconditionf(op, format string, a ...any) {
	panic(PreconditionError{Op: op, Message: fmt.Sprintf(format, a...)})
}
