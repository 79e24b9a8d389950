package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/odvcencio/buckle/pkg/config"
	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/logging"
	"github.com/odvcencio/buckle/pkg/telemetry"
	"github.com/odvcencio/buckle/pkg/ui/app"
	tcellbackend "github.com/odvcencio/buckle/pkg/ui/backend/tcell"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/theme"
)

// Version information - set via ldflags during build
var (
	version   = "0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	if handled, code := dispatchSubcommand(args); handled {
		os.Exit(code)
	}
	os.Exit(runCommand(runDemoCommand, args))
}

func dispatchSubcommand(args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "--version", "-v", "version":
		printVersion(os.Stdout)
		return true, 0
	case "--help", "-h", "help":
		printHelp(os.Stdout)
		return true, 0
	case "demo":
		return true, runCommand(runDemoCommand, args[1:])
	case "snapshot":
		return true, runCommand(runSnapshotCommand, args[1:])
	case "logs":
		return true, runCommand(runLogsCommand, args[1:])
	case "config":
		return true, runCommand(runConfigCommand, args[1:])
	}
	if strings.HasPrefix(args[0], "-") {
		// Flags for the default demo command.
		return false, 0
	}
	fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", args[0])
	fmt.Fprintln(os.Stderr, "Run 'buckle --help' for usage.")
	return true, exitUsage
}

func runCommand(handler func([]string) error, args []string) int {
	if err := handler(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.Hints(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
		}
		return exitCodeForError(err)
	}
	return 0
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "buckle %s (commit %s, built %s)\n", version, commit, buildDate)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "buckle - constraint layout engine for terminal UIs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  buckle [COMMAND] [FLAGS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMANDS:")
	fmt.Fprintln(w, "  demo                             Interactive layout demo (default)")
	fmt.Fprintln(w, "  snapshot [-width N -height N]    Render the demo once to stdout")
	fmt.Fprintln(w, "  logs [-n N] [-session ID]        Show recent events from a session log")
	fmt.Fprintln(w, "  config check                     Validate the layered configuration")
	fmt.Fprintln(w, "  version                          Print version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMON FLAGS:")
	fmt.Fprintln(w, "  -config PATH                     Load a single config file instead of the layered files")
	fmt.Fprintln(w, "  -theme PATH                      Theme YAML (overrides render.theme)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DEMO KEYS:")
	fmt.Fprintln(w, "  up/down, pgup/pgdn, wheel        Scroll the list")
	fmt.Fprintln(w, "  home/end                         Jump to top or bottom")
	fmt.Fprintln(w, "  q, esc, ctrl+c                   Quit")
}

// commonFlags are shared by every command that renders.
type commonFlags struct {
	configPath string
	themePath  string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "config file (defaults to ~/.buckle and ./.buckle layering)")
	fs.StringVar(&c.themePath, "theme", "", "theme YAML file")
}

func (c *commonFlags) load() (*config.Config, *theme.Theme, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFromPath(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, withExitCode(err, exitConfig)
	}
	if c.themePath != "" {
		cfg.Render.Theme = c.themePath
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return nil, nil, withExitCode(err, exitConfig)
	}
	return cfg, th, nil
}

// loadTheme loads the configured theme. render.corners: rounded wins over
// the theme's own corner style.
func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	th, err := theme.Load(cfg.Render.Theme)
	if err != nil {
		return nil, err
	}
	if cfg.Render.Rounded() {
		th.Corners = runtime.CornersRounded
	}
	return th, nil
}

// watchPath returns the file to watch for live reload, or "".
func (c *commonFlags) watchPath() string {
	if c.configPath != "" {
		return c.configPath
	}
	local := filepath.Join(".buckle", "config.yaml")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

func runDemoCommand(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	lines := fs.Int("lines", 200, "number of rows in the scrolling list")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address (overrides telemetry.metrics_addr)")
	if err := fs.Parse(args); err != nil {
		return withExitCode(err, exitUsage)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return withExitCode(stderrors.New("demo needs an interactive terminal; try 'buckle snapshot'"), exitUsage)
	}

	cfg, th, err := common.load()
	if err != nil {
		return err
	}
	if *metricsAddr != "" {
		cfg.Telemetry.MetricsAddr = *metricsAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := openLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer logger.Close()

	shutdownTracing, err := startTracing(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTracing()

	var metrics *telemetry.Metrics
	if cfg.Telemetry.Metrics {
		metrics = telemetry.NewMetrics()
		if cfg.Telemetry.MetricsAddr != "" {
			srv := &http.Server{Addr: cfg.Telemetry.MetricsAddr, Handler: metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
					_ = logger.Error(logging.CategoryApp, "metrics_server", err.Error(), nil)
				}
			}()
			defer srv.Close()
		}
	}

	hub := telemetry.NewHub(64)
	defer hub.Close()

	screen, err := tcellbackend.New()
	if err != nil {
		return withExitCode(errors.Wrap(err, errors.ErrCodeBackendInit, "opening terminal"), exitBackend)
	}

	d := newDemo(cfg, th, *lines)
	loop := app.New(app.Config{
		Backend: screen,
		Build:   d.build,
		Update:  d.update,
		Logger:  logger,
		Metrics: metrics,
		Hub:     hub,
	})

	if path := common.watchPath(); path != "" {
		go func() {
			_ = config.Watch(ctx, path, func(next *config.Config, err error) {
				if err != nil {
					_ = logger.Warn(logging.CategoryConfig, "reload_failed", err.Error(), map[string]any{"path": path})
					return
				}
				if common.themePath != "" {
					next.Render.Theme = common.themePath
				}
				d.offer(next)
				hub.Publish(telemetry.Event{Type: telemetry.EventConfigReloaded, Data: map[string]any{"path": path}})
				_ = loop.Redraw("config")
			})
		}()
	}

	if err := loop.Run(ctx); err != nil {
		code := exitRuntime
		if errors.IsCode(err, errors.ErrCodeBackendInit) {
			code = exitBackend
		}
		return withExitCode(err, code)
	}
	return nil
}

// openLogger opens the session logger. Without a log directory, events at
// warn and above go to fallback when it is non-nil and are dropped
// otherwise: the interactive demo owns stderr's terminal.
func openLogger(cfg *config.Config, fallback io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, withExitCode(err, exitConfig)
	}
	if cfg.Logging.Dir == "" {
		if fallback == nil {
			return nil, nil
		}
		l := logging.NewWriterLogger(fallback, logging.NewSessionID())
		if level == logging.LevelDebug || level == logging.LevelInfo {
			level = logging.LevelWarn
		}
		l.SetMinLevel(level)
		return l, nil
	}
	l, err := logging.NewLogger(cfg.Logging.Dir, logging.NewSessionID())
	if err != nil {
		return nil, withExitCode(err, exitRuntime)
	}
	l.SetMinLevel(level)
	return l, nil
}

// startTracing installs the stdout trace exporter when enabled. Spans go
// to telemetry.trace_file, or to trace.jsonl in the log directory.
func startTracing(cfg *config.Config, logger *logging.Logger) (func(), error) {
	noop := func() {}
	if !cfg.Telemetry.Trace {
		return noop, nil
	}
	path := cfg.Telemetry.TraceFile
	if path == "" {
		if cfg.Logging.Dir == "" {
			_ = logger.Warn(logging.CategoryApp, "trace_disabled", "tracing needs telemetry.trace_file or logging.dir", nil)
			return noop, nil
		}
		path = filepath.Join(cfg.Logging.Dir, "trace.jsonl")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, withExitCode(err, exitRuntime)
	}
	tp, err := telemetry.NewTracerProvider("buckle", version, f)
	if err != nil {
		f.Close()
		return nil, withExitCode(err, exitRuntime)
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
		f.Close()
	}, nil
}

func runConfigCommand(args []string) error {
	if len(args) == 0 || args[0] != "check" {
		return withExitCode(stderrors.New("usage: buckle config check [-config PATH] [-theme PATH]"), exitUsage)
	}
	fs := flag.NewFlagSet("config check", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return withExitCode(err, exitUsage)
	}
	cfg, th, err := common.load()
	if err != nil {
		return err
	}
	fmt.Printf("config ok: max_virtual_extent=%d corners=%s theme=%s level=%s\n",
		cfg.Render.MaxVirtualExtent, cfg.Render.Corners, th.Name, cfg.Logging.Level)
	return nil
}
