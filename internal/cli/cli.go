package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Run modes.
const (
	ModeServe = "serve"
	ModeCheck = "check"
)

// CLIArgs are the command-line arguments for one invocation.
type CLIArgs struct {
	// Mode is ModeServe (default) or ModeCheck.
	Mode string

	// URL and HTMLFile name the page for ModeCheck. HTMLFile "-" reads stdin.
	URL      string
	HTMLFile string

	// Addr and DBPath override the configured listen address and database
	// path when non-empty.
	Addr   string
	DBPath string

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ErrUnknownMode is returned for a leading argument that is not a mode.
var ErrUnknownMode = errors.New("unknown mode")

// ParseArgs parses a slice of args and returns CLIArgs. The first argument
// may name the mode; flags follow it. The function does not read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	mode := ModeServe
	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = args[0]
		rest = args[1:]
	}
	if mode != ModeServe && mode != ModeCheck {
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownMode, mode, ModeServe, ModeCheck)
	}

	fs := flag.NewFlagSet("phishlens "+mode, flag.ContinueOnError)
	var (
		url      = fs.String("url", "", "URL of the page to check (check mode)")
		htmlFile = fs.String("html", "", "File holding the page HTML, or - for stdin (check mode)")
		addr     = fs.String("addr", "", "HTTP listen address (overrides PHISHLENS_ADDR)")
		dbPath   = fs.String("db", "", "SQLite database path (overrides PHISHLENS_DB)")
	)

	// Keep flag errors out of test output; callers print the returned error.
	fs.SetOutput(io.Discard)

	if err := fs.Parse(rest); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if mode == ModeCheck {
		if strings.TrimSpace(*url) == "" {
			return nil, fmt.Errorf("missing required -url argument")
		}
		if strings.TrimSpace(*htmlFile) == "" {
			return nil, fmt.Errorf("missing required -html argument")
		}
	}

	return &CLIArgs{
		Mode:     mode,
		URL:      *url,
		HTMLFile: *htmlFile,
		Addr:     *addr,
		DBPath:   *dbPath,
		RawArgs:  args,
	}, nil
}
