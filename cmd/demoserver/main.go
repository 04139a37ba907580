// Command demoserver hosts the PhishLens sample pages: lookalike logins,
// IP-hosted forms and a benign control, each with the reasons an assessment
// of it should produce.
//
//	demoserver [-port 9999]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/raysh454/phishlens/internal/demoserver"
	"github.com/raysh454/phishlens/internal/logging"
)

func main() {
	cfg := demoserver.DefaultConfig()

	fs := flag.NewFlagSet("demoserver", flag.ExitOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to serve the PhishLens sample pages on")
	_ = fs.Parse(os.Args[1:])

	logger := logging.NewStdoutLogger("demoserver")
	if cfg.Port < 1 || cfg.Port > 65535 {
		logger.Error("invalid port", logging.Field{Key: "port", Value: cfg.Port})
		os.Exit(2)
	}

	fmt.Fprintf(os.Stderr, "PhishLens sample pages on http://localhost:%d/ (pages.json lists the expected reasons)\n", cfg.Port)
	if err := demoserver.NewDemoServer(cfg, logger).Start(); err != nil {
		logger.Error("demo server stopped", logging.Err(err))
		os.Exit(1)
	}
}
