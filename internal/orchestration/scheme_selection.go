package orchestration

import (
	"github.com/agbru/partviz/internal/quicksort"
)

// GetSchemesToRun resolves a scheme name against the registry. "all" selects
// every registered scheme in registration order, which is also the order of
// the lanes on screen.
//
// Returns nil when name is unknown.
func GetSchemesToRun(name string, registry *quicksort.Registry) []quicksort.Scheme {
	if name == "all" {
		return registry.All()
	}
	if s, err := registry.Get(name); err == nil {
		return []quicksort.Scheme{s}
	}
	return nil
}
