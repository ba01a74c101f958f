package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/partviz/internal/cli"
	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/tui"
	"github.com/agbru/partviz/internal/viz"
)

// runCLI sorts the input with every selected scheme and prints the
// comparison. Runs are paced at the configured speed even though the CLI
// only draws a progress bar, so that the timing matches the dashboard.
func (a *Application) runCLI(ctx context.Context, out io.Writer, schemes []quicksort.Scheme, opts orchestration.RunOptions) int {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(schemes, string(opts.Mode), out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	speed := a.Config.Speed
	newSink := func(_ int, scheme string) viz.Sink {
		return viz.NewPaced(scheme, speed, nil)
	}
	results := orchestration.ExecuteRuns(ctx, a.Config.Input, schemes, opts, newSink, progressReporter, progressOut)

	return a.analyzeResults(results, out)
}

// analyzeResults presents the results, then writes the optional report.
func (a *Application) analyzeResults(results []orchestration.RunResult, out io.Writer) int {
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	var exitCode int
	if outputCfg.Quiet {
		presenter := cli.CLIResultPresenter{}
		exitCode = orchestration.AnalyzeRunResults(results, orchestration.PresentationOptions{}, presenter, presenter, io.Discard)
		if exitCode == apperrors.ExitSuccess {
			// AnalyzeRunResults orders successes first, fastest first.
			cli.DisplayQuietResult(out, results[0].Output)
		} else {
			cli.DisplayRunSummary(a.ErrWriter, results)
		}
	} else {
		presOpts := orchestration.PresentationOptions{
			Verbose:    a.Config.Verbose,
			ShowOutput: true,
		}
		exitCode = orchestration.AnalyzeRunResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)
	}

	if code := a.saveReportIfNeeded(results, outputCfg, out); code != apperrors.ExitSuccess {
		return code
	}
	return exitCode
}

func (a *Application) saveReportIfNeeded(results []orchestration.RunResult, cfg cli.OutputConfig, out io.Writer) int {
	if cfg.OutputFile == "" || len(results) == 0 {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteReportToFile(a.Config.Input, results, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !cfg.Quiet {
		cli.DisplaySavedReport(out, cfg.OutputFile)
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard. The summary and the report of
// the last completed session are written once the dashboard exits.
func (a *Application) runTUI(ctx context.Context, out io.Writer, schemes []quicksort.Scheme, opts orchestration.RunOptions) int {
	session := tui.Session{
		Input:   a.Config.Input,
		Schemes: schemes,
		Speed:   a.Config.Speed,
		Options: opts,
	}
	exitCode, results := tui.Run(ctx, session, Version)
	cli.DisplayRunSummary(out, results)

	cfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: true}
	if code := a.saveReportIfNeeded(results, cfg, io.Discard); code != apperrors.ExitSuccess {
		return code
	}
	return exitCode
}
