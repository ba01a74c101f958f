// Package config parses and validates the command-line configuration of
// partviz. Values come from flags first, then PARTVIZ_ environment
// variables, then the defaults declared here.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/partviz/internal/errors"
)

// EnvPrefix is the prefix shared by every environment variable override.
const EnvPrefix = "PARTVIZ_"

const (
	// DefaultInput is the sequence sorted when neither --input nor --random is given.
	DefaultInput = "4,2,8,3,1,5,7,6"
	// DefaultScheme runs every registered partition scheme.
	DefaultScheme = "all"
	// DefaultMode runs the schemes on independent goroutines.
	DefaultMode = "concurrent"
	// DefaultSpeed plays the animation in real time.
	DefaultSpeed = 1.0
	// MaxInputLen bounds the number of keys a run accepts.
	MaxInputLen = 4096
	// RandomKeyBound is the exclusive upper bound of generated keys.
	RandomKeyBound = 100
)

// Modes lists the accepted values of --mode.
var Modes = []string{"concurrent", "lockstep"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Input is the resolved sequence of keys to sort.
	Input []int
	// InputRaw is the comma-separated --input value.
	InputRaw string
	// Random, when positive, replaces the input with that many random keys.
	Random int
	// Seed drives the random generator. Zero picks a time-based seed.
	Seed int64
	// Scheme names the partition scheme to run, or "all".
	Scheme string
	// Mode selects concurrent or lockstep execution.
	Mode string
	// Speed scales the animation pacing. Zero disables pacing.
	Speed float64
	// Timeout bounds the whole execution. Zero derives it from the input size.
	Timeout time.Duration
	// TUI launches the interactive dashboard.
	TUI bool
	// Quiet reduces the output to the sorted sequence.
	Quiet bool
	// Verbose prints the sorted output and logs progress.
	Verbose bool
	// Trace logs every visualization event.
	Trace bool
	// OutputFile is the path of the optional report file.
	OutputFile string
	// MetricsAddr is the listen address of the Prometheus endpoint.
	MetricsAddr string
	// SpansFile is the path the OpenTelemetry spans of the run are written to.
	SpansFile string
	// NoColor disables ANSI colors.
	NoColor bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set, resolves the input
// sequence and validates the result.
//
// Parameters:
//   - programName: The name used in the usage message.
//   - args: The arguments without the program name.
//   - errorWriter: Destination for usage and flag errors.
//   - availableSchemes: The scheme names accepted by --scheme (besides "all").
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for --help, a ConfigError or a ValidationError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableSchemes []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.InputRaw, "input", DefaultInput, "Comma-separated integer keys to sort.")
	fs.IntVar(&config.Random, "random", 0, "Sort N random keys instead of --input.")
	fs.Int64Var(&config.Seed, "seed", 0, "Seed of the random input (0 = time-based).")
	fs.StringVar(&config.Scheme, "scheme", DefaultScheme, fmt.Sprintf("Partition scheme to run: %s or all.", strings.Join(availableSchemes, ", ")))
	fs.StringVar(&config.Mode, "mode", DefaultMode, "Execution mode: concurrent or lockstep.")
	fs.Float64Var(&config.Speed, "speed", DefaultSpeed, "Animation speed multiplier (0 = no pacing).")
	fs.DurationVar(&config.Timeout, "timeout", 0, "Maximum execution time (0 = derived from the input size).")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the sorted sequence.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print the sorted output and progress logs.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Trace, "trace", false, "Log every visualization event.")
	fs.StringVar(&config.OutputFile, "output", "", "Write a run report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.SpansFile, "spans", "", "Write OpenTelemetry spans of the sort to this file.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Animates the Lomuto and Hoare partition schemes of quicksort on the same input.")
		fmt.Fprintln(errorWriter)
		fmt.Fprintln(errorWriter, "Options:")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery option can also be set through the %s<NAME> environment variable.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&config, fs)

	if err := config.resolveInput(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	if err := config.Validate(availableSchemes); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return ApplyDerivedDefaults(config, availableSchemes), nil
}

// resolveInput fills Input from --random or --input.
func (c *AppConfig) resolveInput() error {
	if c.Random < 0 {
		return apperrors.ValidationError{Field: "random", Message: "must be positive"}
	}
	if c.Random > 0 {
		if c.Random > MaxInputLen {
			return apperrors.ValidationError{Field: "random", Message: fmt.Sprintf("at most %d keys are supported", MaxInputLen)}
		}
		if c.Seed == 0 {
			c.Seed = time.Now().UnixNano()
		}
		c.Input = GenerateInput(c.Random, c.Seed)
		return nil
	}
	keys, err := ParseInput(c.InputRaw)
	if err != nil {
		return err
	}
	c.Input = keys
	return nil
}

// Validate checks the configuration for semantic errors.
//
// Parameters:
//   - availableSchemes: The registered scheme names.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableSchemes []string) error {
	if len(c.Input) == 0 {
		return apperrors.NewConfigError("the input sequence is empty")
	}
	if len(c.Input) > MaxInputLen {
		return apperrors.NewConfigError("the input has %d keys, at most %d are supported", len(c.Input), MaxInputLen)
	}
	scheme := strings.ToLower(strings.TrimSpace(c.Scheme))
	if scheme != "all" && !slices.Contains(availableSchemes, scheme) {
		return apperrors.NewConfigError("unknown scheme %q (available: %s, all)", c.Scheme, strings.Join(availableSchemes, ", "))
	}
	if !slices.Contains(Modes, strings.ToLower(strings.TrimSpace(c.Mode))) {
		return apperrors.NewConfigError("unknown mode %q (available: %s)", c.Mode, strings.Join(Modes, ", "))
	}
	if c.Speed < 0 {
		return apperrors.NewConfigError("speed must be zero or positive, got %g", c.Speed)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("--quiet and --tui are mutually exclusive")
	}
	return nil
}

// ParseInput parses a comma-separated list of integer keys. Blank entries
// between commas are rejected.
func ParseInput(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperrors.ValidationError{Field: "input", Message: "the sequence is empty"}
	}
	parts := strings.Split(raw, ",")
	keys := make([]int, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, apperrors.ValidationError{Field: "input", Message: fmt.Sprintf("entry %d is blank", i+1)}
		}
		key, err := strconv.Atoi(part)
		if err != nil {
			return nil, apperrors.ValidationError{Field: "input", Message: fmt.Sprintf("entry %d (%q) is not an integer", i+1, part)}
		}
		keys = append(keys, key)
	}
	if len(keys) > MaxInputLen {
		return nil, apperrors.ValidationError{Field: "input", Message: fmt.Sprintf("at most %d keys are supported", MaxInputLen)}
	}
	return keys, nil
}

// GenerateInput returns n pseudo-random keys in [0, RandomKeyBound). The same
// seed always yields the same sequence.
func GenerateInput(n int, seed int64) []int {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|0x9e3779b9))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.IntN(RandomKeyBound)
	}
	return keys
}

// FormatInput renders keys the way --input accepts them.
func FormatInput(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}
