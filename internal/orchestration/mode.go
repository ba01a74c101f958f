package orchestration

import (
	"fmt"
	"strings"
)

// Mode selects how concurrent runs are scheduled.
type Mode string

const (
	// ModeConcurrent runs every scheme on its own goroutine. Runs interleave
	// freely.
	ModeConcurrent Mode = "concurrent"
	// ModeLockstep lets exactly one run execute between suspension points
	// and hands the turn to the next run at every suspension point. The
	// interleaving is deterministic.
	ModeLockstep Mode = "lockstep"
)

// Modes lists the accepted mode names.
var Modes = []Mode{ModeConcurrent, ModeLockstep}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want concurrent or lockstep)", s)
}
