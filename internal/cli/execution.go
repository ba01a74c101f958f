package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/partviz/internal/config"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/ui"
)

// PrintExecutionConfig displays the input, the pacing and the timeout of
// the execution.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Sorting %s%d%s keys %s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), len(cfg.Input), ui.ColorReset(),
		FormatSequence(cfg.Input), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if cfg.Random > 0 {
		fmt.Fprintf(out, "Input: %s%d%s random keys (seed %s%d%s).\n",
			ui.ColorCyan(), cfg.Random, ui.ColorReset(), ui.ColorCyan(), cfg.Seed, ui.ColorReset())
	}
	pacing := "disabled"
	if cfg.Speed > 0 {
		pacing = fmt.Sprintf("x%g", cfg.Speed)
	}
	fmt.Fprintf(out, "Animation speed: %s%s%s.\n", ui.ColorCyan(), pacing, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays which schemes run and how they are scheduled.
//
// Parameters:
//   - schemes: The schemes that will be executed.
//   - mode: The scheduling mode ("concurrent" or "lockstep").
//   - out: The writer for standard output.
func PrintExecutionMode(schemes []quicksort.Scheme, mode string, out io.Writer) {
	var modeDesc string
	switch {
	case len(schemes) == 0:
		modeDesc = "No scheme selected"
	case len(schemes) == 1:
		modeDesc = fmt.Sprintf("Single sort with the %s%s%s partition scheme",
			ui.ColorGreen(), schemes[0].Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Side-by-side comparison of %d partition schemes (%s%s%s)",
			len(schemes), ui.ColorGreen(), mode, ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
