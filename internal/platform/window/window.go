// Package window presents frames in a desktop window through ebiten.
package window

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/platform"
	"github.com/rook-computer/pocketedit/internal/render"
)

// Window runs ebiten on the main goroutine. Every ebiten Update samples
// input and releases one tick to the frame loop.
type Window struct {
	Title  string
	Scale  int
	TPS    int
	Logger platform.Logger

	tracker input.Tracker
	ticks   chan struct{}
	done    chan struct{}
	running atomic.Bool

	mu        sync.Mutex
	composite *image.RGBA
	dirty     bool
	screen    *ebiten.Image
}

func New(title string, scale, tps int) *Window {
	return &Window{Title: title, Scale: scale, TPS: tps}
}

func (w *Window) Start(ctx context.Context) error {
	if w.Logger == nil {
		w.Logger = nopLogger{}
	}
	if w.Scale <= 0 {
		w.Scale = 1
	}
	if w.TPS <= 0 {
		w.TPS = 60
	}
	w.ticks = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.running.Store(true)

	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(render.CompositeWidth*w.Scale, render.CompositeHeight*w.Scale)
	ebiten.SetTPS(w.TPS)
	w.Logger.Infof("window", "started, scale=%d tps=%d", w.Scale, w.TPS)

	go func() {
		<-ctx.Done()
		_ = w.Stop()
	}()
	return nil
}

func (w *Window) Stop() error {
	if w.running.Swap(false) {
		close(w.done)
	}
	return nil
}

func (w *Window) Running() bool { return w.running.Load() }

// Poll waits for the next ebiten tick.
func (w *Window) Poll() input.State {
	select {
	case <-w.ticks:
	case <-w.done:
	}
	return w.tracker.Take()
}

func (w *Window) Present(top, bottom *image.RGBA) error {
	if !w.running.Load() {
		return platform.ErrClosed
	}
	w.mu.Lock()
	w.composite = render.Compose(w.composite, top, bottom)
	w.dirty = true
	w.mu.Unlock()
	return nil
}

// RunMain runs fn on a new goroutine while ebiten owns the caller. The
// window closes when fn returns.
func (w *Window) RunMain(fn func() error) error {
	errc := make(chan error, 1)
	go func() {
		errc <- fn()
		_ = w.Stop()
	}()

	err := ebiten.RunGame(&game{w: w})
	_ = w.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return <-errc
}

type game struct {
	w *Window
}

func (g *game) Update() error {
	w := g.w
	if !w.running.Load() {
		return ebiten.Termination
	}
	w.tracker.Observe(heldKeys())
	if p, ok := touchPoint(); ok {
		w.tracker.SetTouch(p, true)
	} else {
		w.tracker.SetTouch(image.Point{}, false)
	}
	if homePressed() {
		w.tracker.BlockHome()
	}
	select {
	case w.ticks <- struct{}{}:
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.composite == nil {
		return
	}
	if w.screen == nil {
		w.screen = ebiten.NewImage(render.CompositeWidth, render.CompositeHeight)
	}
	if w.dirty {
		w.screen.WritePixels(w.composite.Pix)
		w.dirty = false
	}
	screen.DrawImage(w.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.CompositeWidth, render.CompositeHeight
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}
