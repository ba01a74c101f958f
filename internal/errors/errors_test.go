package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("unknown mode %q", "bogus"), `unknown mode "bogus"`},
		{"validation", ValidationError{Field: "input", Message: "entry 2 is blank"}, "invalid input: entry 2 is blank"},
		{"sort", SortError{Scheme: "hoare", Cause: context.Canceled}, "hoare run: context canceled"},
		{"precondition", PreconditionError{Op: "sequence.Get", Message: "index 9 out of range [0,8)"},
			"sequence.Get: precondition violated: index 9 out of range [0,8)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortErrorUnwrap(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("lane 1: %w", SortError{Scheme: "lomuto", Cause: context.DeadlineExceeded})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("the cause is not reachable through errors.Is")
	}
	var serr SortError
	if !errors.As(err, &serr) || serr.Scheme != "lomuto" {
		t.Errorf("errors.As = %+v", serr)
	}
}

func TestPreconditionfPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		perr, ok := recover().(PreconditionError)
		if !ok {
			t.Fatal("expected a PreconditionError panic")
		}
		if perr.Op != "quicksort.SortRange" || perr.Message != "range [3,1] invalid for length 4" {
			t.Errorf("payload = %+v", perr)
		}
	}()
	Preconditionf("quicksort.SortRange", "range [%d,%d] invalid for length %d", 3, 1, 4)
}

type fakeColors struct{}

func (fakeColors) Red() string    { return "<r>" }
func (fakeColors) Yellow() string { return "<y>" }
func (fakeColors) Reset() string  { return "</>" }

func TestHandleRunError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		contains string
	}{
		{"success", nil, ExitSuccess, ""},
		{"deadline inside a run", SortError{Scheme: "lomuto", Cause: context.DeadlineExceeded}, ExitErrorTimeout, "Timeout"},
		{"interrupt", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"config", NewConfigError("bad flag"), ExitErrorConfig, "bad flag"},
		{"anything else", errors.New("boom"), ExitErrorGeneric, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if code := HandleRunError(tt.err, time.Second, &buf, nil); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.contains)
			}
			if tt.err == nil && buf.Len() != 0 {
				t.Errorf("success printed %q", buf.String())
			}
		})
	}
}

func TestHandleRunErrorColors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	HandleRunError(context.DeadlineExceeded, 2*time.Second, &buf, fakeColors{})
	out := buf.String()
	if !strings.HasPrefix(out, "<r>") || !strings.Contains(out, "<y>2s</>") {
		t.Errorf("colors not applied: %q", out)
	}
}

func TestExitCodesDistinct(t *testing.T) {
	t.Parallel()
	codes := []int{ExitSuccess, ExitErrorGeneric, ExitErrorTimeout, ExitErrorMismatch, ExitErrorConfig, ExitErrorCanceled}
	seen := map[int]bool{}
	for _, c := range codes {
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
}
