package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/pocketedit/internal/app"
	"github.com/rook-computer/pocketedit/internal/config"
	"github.com/rook-computer/pocketedit/internal/input"
)

func main() {
	fmt.Println("pocketedit starting")

	cfg, err := config.Resolve(flag.CommandLine, os.Args[1:], config.Default())
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	logger, closeLog, err := app.OpenLogger(cfg)
	if err != nil {
		fmt.Println(err)
	}
	defer closeLog()

	p, err := app.NewPlatform(cfg, input.NewScript())
	if err != nil {
		fmt.Println("platform error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, p)
	a.Logger = logger
	if err := a.Run(ctx); err != nil {
		logger.Errorf("main", "run error: %v", err)
		fmt.Println("run error:", err)
		closeLog()
		os.Exit(1)
	}
}
