package config

import (
	"strings"
	"time"

	"github.com/agbru/partviz/internal/viz"
)

// Timeout resolution chain (highest priority first):
//   1. CLI flag (--timeout)
//   2. Environment variable (PARTVIZ_TIMEOUT)
//   3. Estimate from the input size and the animation speed (this file)

const (
	// MinTimeout is the floor of the estimated timeout.
	MinTimeout = 30 * time.Second
	// MaxTimeout caps the estimated timeout.
	MaxTimeout = 12 * time.Hour
	// UnpacedTimeout applies when pacing is disabled (--speed 0).
	UnpacedTimeout = time.Minute

	// timeoutSlack scales the worst-case pacing to absorb scheduling and
	// rendering overhead.
	timeoutSlack = 1.25
)

// ApplyDerivedDefaults fills the settings left at their zero default with
// values derived from the rest of the configuration. Explicit values are
// preserved. In lockstep mode the runs share one turn, so the timeout of
// "all" covers every available scheme back to back.
func ApplyDerivedDefaults(cfg AppConfig, availableSchemes []string) AppConfig {
	if cfg.Timeout != 0 {
		return cfg
	}
	timeout := EstimateTimeout(len(cfg.Input), cfg.Speed)
	if strings.EqualFold(strings.TrimSpace(cfg.Mode), "lockstep") &&
		strings.EqualFold(strings.TrimSpace(cfg.Scheme), "all") &&
		len(availableSchemes) > 1 && cfg.Speed > 0 {
		timeout = min(timeout*time.Duration(len(availableSchemes)), MaxTimeout)
	}
	cfg.Timeout = timeout
	return cfg
}

// EstimateTimeout returns a deadline large enough for one paced run over n
// keys, whatever their order.
//
// The bound is quicksort's quadratic case: every partition of k keys peels
// off a single key after k-1 scan steps. The costliest step is a Lomuto
// step that advances both cursors and swaps, three tweens and a scan pause
// under the default timing. Each partition then pays its final placement,
// and the run ends with the closing pause.
func EstimateTimeout(n int, speed float64) time.Duration {
	if speed <= 0 {
		return UnpacedTimeout
	}
	if n < 2 {
		return MinTimeout
	}
	t := viz.DefaultTiming()
	stepCost := 3*t.Step + t.ScanPause
	placeCost := t.Step + t.SettlePause

	steps := time.Duration(n) * time.Duration(n-1) / 2
	paced := steps*stepCost + time.Duration(n-1)*placeCost + t.Final
	estimate := time.Duration(float64(paced) * timeoutSlack / speed)
	return min(max(estimate, MinTimeout), MaxTimeout)
}
