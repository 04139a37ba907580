package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/cli"
	"github.com/raysh454/phishlens/internal/events"
	"github.com/raysh454/phishlens/internal/logging"
	"github.com/raysh454/phishlens/internal/server"
)

// Application is the global runtime state container.
// It holds config, parsed CLI args and the core services shared by both run
// modes. The event store is opened only when serving.
type Application struct {
	Config *Config
	Args   *cli.CLIArgs

	Logger   logging.Logger
	Assessor *assessor.HeuristicsAssessor

	mu   sync.Mutex
	addr net.Addr
}

// NewApplication constructs an Application from the provided parts.
func NewApplication(cfg *Config, args *cli.CLIArgs, logger logging.Logger) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if args == nil {
		args = &cli.CLIArgs{Mode: cli.ModeServe}
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("phishlens")
	}

	assessorCfg := cfg.AssessorCfg
	a, err := assessor.NewHeuristicsAssessor(&assessorCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating assessor: %w", err)
	}

	return &Application{
		Config:   cfg,
		Args:     args,
		Logger:   logger,
		Assessor: a,
	}, nil
}

// Run executes the mode selected by Args. stdin feeds "-html -" in check
// mode and the result is written to stdout.
func (a *Application) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	if a == nil {
		return errors.New("application is nil")
	}
	switch a.Args.Mode {
	case cli.ModeCheck:
		return a.Check(ctx, stdin, stdout)
	case cli.ModeServe, "":
		return a.Serve(ctx)
	default:
		return fmt.Errorf("%w %q", cli.ErrUnknownMode, a.Args.Mode)
	}
}

// Check assesses the page named by Args and writes the result as JSON.
func (a *Application) Check(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	html, err := readHTML(a.Args.HTMLFile, stdin)
	if err != nil {
		return err
	}

	res, err := a.Assessor.Assess(ctx, a.Args.URL, html)
	if err != nil {
		return fmt.Errorf("assessing %s: %w", a.Args.URL, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func readHTML(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		if stdin == nil {
			return "", errors.New("no stdin to read HTML from")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading HTML from stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading HTML file: %w", err)
	}
	return string(b), nil
}

// Serve opens the event store, starts the HTTP API and blocks until ctx is
// done or the process receives SIGINT/SIGTERM, then shuts down gracefully.
func (a *Application) Serve(ctx context.Context) error {
	cfg := a.Config

	store, err := events.OpenSQLite(cfg.DBPath, a.Logger)
	if err != nil {
		return fmt.Errorf("opening event store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.Logger.Warn("closing event store", logging.Err(err))
		}
	}()

	srv, err := server.NewServer(server.Config{
		ListenAddr:         cfg.ListenAddr,
		DefaultEventsLimit: cfg.DefaultEventsLimit,
		MaxEventsLimit:     cfg.MaxEventsLimit,
		MaxBodyBytes:       cfg.MaxBodyBytes,
		ReadTimeout:        cfg.ReadTimeout,
		Assessor:           a.Assessor,
		Store:              store,
		Feed:               events.NewFeed(cfg.FeedBuffer),
		Logger:             a.Logger.With(logging.Field{Key: "component", Value: "server"}),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer srv.Close()

	httpSrv := srv.HTTPServer()
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.ListenAddr, err)
	}
	a.mu.Lock()
	a.addr = ln.Addr()
	a.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening",
			logging.Field{Key: "addr", Value: ln.Addr().String()},
			logging.Field{Key: "db", Value: cfg.DBPath})
		serveErr <- httpSrv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down server")
	// Close live feeds first; websocket handlers are not tracked by Shutdown.
	srv.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// Addr returns the address Serve is listening on, or nil before it binds.
func (a *Application) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}

// Shutdown releases the shared services.
func (a *Application) Shutdown() error {
	if a == nil {
		return errors.New("application is nil")
	}
	a.Logger.Info("application shutdown")
	return a.Assessor.Close()
}
