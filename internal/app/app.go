// Package app wires the configuration, the sorting coordinator and the
// presentation layers (CLI, TUI, metrics server) into the partviz command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/partviz/internal/config"
	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/logging"
	"github.com/agbru/partviz/internal/metrics"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/server"
	"github.com/agbru/partviz/internal/telemetry"
	"github.com/agbru/partviz/internal/ui"
	"github.com/agbru/partviz/internal/viz"
)

// progressLogStep is the progress increment logged in verbose mode.
const progressLogStep = 0.25

// spanFlushTimeout bounds the export of pending spans on exit.
const spanFlushTimeout = 5 * time.Second

// Application represents the partviz application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *quicksort.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom scheme registry for the application.
func WithRegistry(r *quicksort.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = quicksort.NewDefaultRegistry()
	}

	programName := "partviz"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Verbose || a.Config.Trace {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	mode, err := orchestration.ParseMode(a.Config.Mode)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	schemes := orchestration.GetSchemesToRun(strings.ToLower(strings.TrimSpace(a.Config.Scheme)), a.Registry)
	if len(schemes) == 0 {
		fmt.Fprintf(a.ErrWriter, "Error: unknown scheme %q\n", a.Config.Scheme)
		return apperrors.ExitErrorConfig
	}

	if a.Config.SpansFile != "" {
		stop, err := a.startSpanExport()
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: spans: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer stop()
	}

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	opts := orchestration.RunOptions{
		Mode:   mode,
		Timing: viz.DefaultTiming(),
		Trace:  a.Config.Trace,
	}
	logger := a.newLogger()
	if logger != nil {
		opts.Logger = logger
		if a.Config.Verbose {
			opts.Observers = append(opts.Observers, progress.NewLoggingObserver(logger.Zerolog(), progressLogStep))
		}
	}

	if a.Config.MetricsAddr != "" {
		collector := metrics.NewCollector()
		stop, err := a.startMetricsServer(ctx, collector, logger)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: metrics server: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer stop()
		opts.RunObserver = collector
	}

	if a.Config.TUI {
		return a.runTUI(ctx, out, schemes, opts)
	}
	return a.runCLI(ctx, out, schemes, opts)
}

// newLogger returns the run logger, or nil when neither --verbose nor
// --trace is set. The dashboard owns the terminal, so it never logs.
func (a *Application) newLogger() *logging.ZerologAdapter {
	if a.Config.TUI || !(a.Config.Verbose || a.Config.Trace) {
		return nil
	}
	return logging.NewConsoleLogger(a.ErrWriter, a.Config.NoColor)
}

// startSpanExport installs a tracer provider writing to the --spans file.
// The returned function flushes the spans and closes the file.
func (a *Application) startSpanExport() (func(), error) {
	f, err := os.Create(a.Config.SpansFile)
	if err != nil {
		return nil, err
	}
	shutdown, err := telemetry.Setup(f, Version)
	if err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), spanFlushTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: spans: %v\n", err)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: spans: %v\n", err)
		}
	}, nil
}

// startMetricsServer binds the metrics endpoint and serves it in the
// background. The returned function stops the server and waits for it.
func (a *Application) startMetricsServer(ctx context.Context, collector *metrics.Collector, logger *logging.ZerologAdapter) (func(), error) {
	var srvLogger logging.Logger
	if logger != nil {
		srvLogger = logger
	}
	srv := server.New(a.Config.MetricsAddr, collector, srvLogger)
	if err := srv.Listen(); err != nil {
		return nil, err
	}
	if !a.Config.Quiet && !a.Config.TUI {
		fmt.Fprintf(a.ErrWriter, "Serving metrics on http://%s/metrics\n", srv.Addr())
	}

	serveCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(serveCtx); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: metrics server: %v\n", err)
		}
	}()
	return func() {
		cancel()
		<-done
	}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
