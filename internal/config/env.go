package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envBinding ties a PARTVIZ_<Key> variable to the flags it stands in for.
// The variable is ignored when any of those flags was given explicitly.
type envBinding struct {
	key   string
	flags []string
	set   func(*AppConfig, string)
}

// parsed adapts a strict parser into a setter that leaves the field untouched
// when the value does not parse.
func parsed[T any](parse func(string) (T, error), field func(*AppConfig) *T) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if x, err := parse(v); err == nil {
			*field(c) = x
		}
	}
}

func text(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

func boolean(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = parseBoolEnv(v, *field(c)) }
}

var envBindings = []envBinding{
	{"INPUT", []string{"input"}, text(func(c *AppConfig) *string { return &c.InputRaw })},
	{"RANDOM", []string{"random"}, parsed(strconv.Atoi, func(c *AppConfig) *int { return &c.Random })},
	{"SEED", []string{"seed"}, parsed(func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
		func(c *AppConfig) *int64 { return &c.Seed })},
	{"SCHEME", []string{"scheme"}, text(func(c *AppConfig) *string { return &c.Scheme })},
	{"MODE", []string{"mode"}, text(func(c *AppConfig) *string { return &c.Mode })},
	{"SPEED", []string{"speed"}, parsed(func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		func(c *AppConfig) *float64 { return &c.Speed })},
	{"TIMEOUT", []string{"timeout"}, parsed(time.ParseDuration, func(c *AppConfig) *time.Duration { return &c.Timeout })},
	{"OUTPUT", []string{"output", "o"}, text(func(c *AppConfig) *string { return &c.OutputFile })},
	{"METRICS_ADDR", []string{"metrics-addr"}, text(func(c *AppConfig) *string { return &c.MetricsAddr })},
	{"SPANS", []string{"spans"}, text(func(c *AppConfig) *string { return &c.SpansFile })},
	{"TUI", []string{"tui"}, boolean(func(c *AppConfig) *bool { return &c.TUI })},
	{"QUIET", []string{"quiet", "q"}, boolean(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"verbose", "v"}, boolean(func(c *AppConfig) *bool { return &c.Verbose })},
	{"TRACE", []string{"trace"}, boolean(func(c *AppConfig) *bool { return &c.Trace })},
	{"NO_COLOR", []string{"no-color"}, boolean(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts true/yes/1 and false/no/0 in any case and returns
// fallback for anything else.
func parseBoolEnv(v string, fallback bool) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "1":
		return true
	case "false", "no", "0":
		return false
	}
	return fallback
}

// applyEnvOverrides gives environment variables precedence over the defaults
// but not over flags present on the command line.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

bindings:
	for _, b := range envBindings {
		for _, name := range b.flags {
			if explicit[name] {
				continue bindings
			}
		}
		if v := os.Getenv(EnvPrefix + b.key); v != "" {
			b.set(cfg, v)
		}
	}
}
