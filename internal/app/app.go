package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rook-computer/pocketedit/internal/app/screens"
	"github.com/rook-computer/pocketedit/internal/config"
	"github.com/rook-computer/pocketedit/internal/gui"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/platform"
	"github.com/rook-computer/pocketedit/internal/platform/window"
	"github.com/rook-computer/pocketedit/internal/render"
)

type App struct {
	Config   config.Config
	Platform platform.Platform
	Settings *screens.Settings
	Logger   Logger

	ctx *gui.Context
}

func New(cfg config.Config, p platform.Platform) *App {
	return &App{Config: cfg, Platform: p, Settings: screens.NewSettings(), Logger: NoopLogger{}}
}

// NewPlatform builds the platform named by cfg. source feeds the headless
// platform and is ignored otherwise.
func NewPlatform(cfg config.Config, source input.Source) (platform.Platform, error) {
	switch cfg.Platform {
	case config.PlatformDevice:
		return platform.NewDevice(cfg.Framebuffer, cfg.TPS), nil
	case config.PlatformWindow:
		return window.New("pocketedit", cfg.Scale, cfg.TPS), nil
	case config.PlatformHeadless:
		h := platform.NewHeadless(source, cfg.Frames)
		h.DumpDir = cfg.DumpDir
		return h, nil
	default:
		return nil, fmt.Errorf("platform %q: %w", cfg.Platform, config.ErrUnknownPlatform)
	}
}

// OpenLogger returns a FileLogger on cfg.LogPath when debug is on, else a
// NoopLogger. The returned close func is never nil.
func OpenLogger(cfg config.Config) (Logger, func(), error) {
	if !cfg.Debug {
		return NoopLogger{}, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return NoopLogger{}, func() {}, fmt.Errorf("debug log open: %w", err)
	}
	logger := NewFileLogger(f)
	logger.Infof("main", "debug logging enabled")
	return logger, func() { _ = f.Close() }, nil
}

// Context returns the compositor context once Start has run.
func (app *App) Context() *gui.Context { return app.ctx }

// Start loads fonts, starts the platform and pushes the main menu.
func (app *App) Start(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	faces, err := render.LoadFaces(app.Config.FontBackend, app.Config.FontPath, app.Config.FontSize)
	if err != nil {
		app.Logger.Errorf("app", "font load error: %v, using basic font", err)
		faces = render.BasicFaces()
	}
	shaper := render.NewFontShaper(faces)
	shaper.Logger = app.Logger
	renderer := render.NewRenderer(shaper)

	setLogger(app.Platform, app.Logger)
	if err := app.Platform.Start(ctx); err != nil {
		app.Logger.Errorf("app", "platform start error: %v", err)
		return fmt.Errorf("start %s platform: %w", app.Config.Platform, err)
	}
	app.Logger.Infof("app", "platform %s started", app.Config.Platform)

	app.ctx = gui.NewContext(renderer, app.Platform, app.Logger)
	app.ctx.Stack.Push(screens.NewMainMenu(app.Settings))
	return nil
}

// Run starts the app and drives the frame loop until the user quits, the
// platform stops or ctx is done. Platforms that must own the main
// goroutine get it; the loop then runs beside them.
func (app *App) Run(ctx context.Context) error {
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer app.Stop()

	loop := func() error {
		err := app.ctx.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	if runner, ok := app.Platform.(platform.MainThreadRunner); ok {
		return runner.RunMain(loop)
	}
	return loop()
}

func (app *App) Stop() error {
	if app.Platform == nil {
		return nil
	}
	app.Logger.Infof("app", "stopping")
	return app.Platform.Stop()
}

func setLogger(p platform.Platform, l Logger) {
	switch p := p.(type) {
	case *platform.Headless:
		p.Logger = l
	case *platform.Device:
		p.Logger = l
	case *window.Window:
		p.Logger = l
	}
}
