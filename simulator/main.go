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
	"github.com/rook-computer/pocketedit/internal/platform"
)

func main() {
	defaults := config.Default()
	defaults.Platform = config.PlatformHeadless
	defaults.FontBackend = "basic"
	defaults.Frames = 120
	defaults.DumpDir = "/tmp/pocketedit-sim"

	fs := flag.CommandLine
	scriptText := fs.String("script", "", `input ticks, e.g. "A,,DOWN,~SELECT,B"; idle after the last tick`)
	scriptFile := fs.String("script-file", "", "read the -script ticks from this file")
	cfg, err := config.Resolve(fs, os.Args[1:], defaults)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	if cfg.Platform != config.PlatformHeadless {
		fmt.Println("simulator only runs the headless platform, ignoring -platform", cfg.Platform)
		cfg.Platform = config.PlatformHeadless
	}

	text := *scriptText
	if *scriptFile != "" {
		raw, err := os.ReadFile(*scriptFile)
		if err != nil {
			fmt.Println("script read error:", err)
			os.Exit(2)
		}
		text = string(raw)
	}
	script, err := input.ParseScript(text)
	if err != nil {
		fmt.Println("script error:", err)
		os.Exit(2)
	}

	logger, closeLog, err := app.OpenLogger(cfg)
	if err != nil {
		fmt.Println(err)
	}
	defer closeLog()

	p, err := app.NewPlatform(cfg, script)
	if err != nil {
		fmt.Println("platform error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, p)
	a.Logger = logger
	if err := a.Run(processCtx); err != nil {
		fmt.Println("run error:", err)
		closeLog()
		os.Exit(1)
	}

	h := p.(*platform.Headless)
	fmt.Printf("pocketedit simulator: %d ticks, %d frames, %d scripted ticks unused\n", h.Polled(), h.Presented(), script.Remaining())
	if cfg.DumpDir != "" {
		fmt.Println("Frames written to", cfg.DumpDir)
	}
	fmt.Println("Final screen depth:", a.Context().Stack.Len())
}
