// Command phishlens scores web pages for phishing risk, either as an HTTP
// service (default) or once from the command line.
//
//	phishlens serve [-addr :8000] [-db phishlens.db]
//	phishlens check -url https://example.com/login -html page.html
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/raysh454/phishlens/internal/app"
	"github.com/raysh454/phishlens/internal/cli"
	"github.com/raysh454/phishlens/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "phishlens: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	args, err := cli.ParseArgs(argv)
	if err != nil {
		return err
	}

	cfg := app.DefaultConfig()
	if err := app.LoadFromEnv(cfg); err != nil {
		return err
	}
	app.ApplyArgs(cfg, args)

	// Check mode prints its result on stdout; keep logs off it.
	logger := logging.NewStdoutLogger("phishlens")
	if args.Mode == cli.ModeCheck {
		logger = logging.NewWriterLogger("phishlens", os.Stderr)
	}

	a, err := app.NewApplication(cfg, args, logger)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	return a.Run(context.Background(), os.Stdin, os.Stdout)
}
