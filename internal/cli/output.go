package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/partviz/internal/config"
	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path of the report (empty for no file output).
	OutputFile string
	// Quiet prints only the sorted sequence.
	Quiet bool
	// Verbose adds the input and the counters to the report summary.
	Verbose bool
}

// WriteReportToFile writes the input and the outcome of every run to the
// configured file, creating its directory if needed.
//
// Parameters:
//   - input: The sequence every run started from.
//   - results: The run results, in any order.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(input []int, results []orchestration.RunResult, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Partition Scheme Comparison\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Keys: %d\n", len(input))
	fmt.Fprintf(file, "\ninput = %s\n", config.FormatInput(input))

	for _, res := range results {
		fmt.Fprintf(file, "\n[%s]\n", res.Scheme)
		if res.Err != nil {
			fmt.Fprintf(file, "status = failure (%v)\n", res.Err)
		} else {
			fmt.Fprintf(file, "status = success\n")
		}
		fmt.Fprintf(file, "duration = %s\n", res.Duration)
		fmt.Fprintf(file, "comparisons = %d\n", res.Stats.Comparisons)
		fmt.Fprintf(file, "swaps = %d\n", res.Stats.Swaps)
		fmt.Fprintf(file, "partitions = %d\n", res.Stats.Partitions)
		fmt.Fprintf(file, "max_depth = %d\n", res.Stats.MaxDepth)
		fmt.Fprintf(file, "output = %s\n", config.FormatInput(res.Output))
	}

	return file.Close()
}

// FormatQuietResult formats the sorted sequence for scripting: the keys
// separated by commas, as --input accepts them.
func FormatQuietResult(output []int) string {
	return config.FormatInput(output)
}

// DisplayQuietResult outputs the sorted sequence in quiet mode.
func DisplayQuietResult(out io.Writer, output []int) {
	fmt.Fprintln(out, FormatQuietResult(output))
}

// DisplaySavedReport confirms that the report file was written.
func DisplaySavedReport(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}

// DisplayRunSummary prints a one-line summary per run, used when the
// comparison table is not shown (dashboard exit, quiet failures).
func DisplayRunSummary(out io.Writer, results []orchestration.RunResult) {
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
		}
		fmt.Fprintf(out, "%-8s %10s  %s swaps, %s comparisons  %s\n",
			res.Scheme, format.FormatExecutionDuration(res.Duration),
			format.FormatCount(res.Stats.Swaps), format.FormatCount(res.Stats.Comparisons), status)
	}
}
