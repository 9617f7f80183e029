package platform

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
)

// Headless runs without a display. It stops after Frames ticks when
// Frames > 0 and can dump every presented frame as PNG.
type Headless struct {
	Source  input.Source
	Frames  int
	DumpDir string
	Logger  Logger

	polled    int
	presented int
	last      *image.RGBA
	stopped   atomic.Bool
}

func NewHeadless(source input.Source, frames int) *Headless {
	return &Headless{Source: source, Frames: frames}
}

func (h *Headless) Start(ctx context.Context) error {
	if h.Logger == nil {
		h.Logger = noopLogger{}
	}
	if h.DumpDir != "" {
		if err := os.MkdirAll(h.DumpDir, 0o755); err != nil {
			return fmt.Errorf("create dump dir: %w", err)
		}
	}
	h.stopped.Store(false)
	h.Logger.Infof("headless", "started, frames=%d dump=%q", h.Frames, h.DumpDir)

	go func() {
		<-ctx.Done()
		_ = h.Stop()
	}()
	return nil
}

func (h *Headless) Stop() error {
	h.stopped.Store(true)
	return nil
}

func (h *Headless) Running() bool {
	if h.stopped.Load() {
		return false
	}
	return h.Frames <= 0 || h.polled < h.Frames
}

func (h *Headless) Poll() input.State {
	h.polled++
	if h.Source == nil {
		return input.State{}
	}
	return h.Source.Poll()
}

func (h *Headless) Present(top, bottom *image.RGBA) error {
	if h.stopped.Load() {
		return ErrClosed
	}
	h.last = render.Compose(h.last, top, bottom)
	h.presented++
	if h.DumpDir == "" {
		return nil
	}
	path := filepath.Join(h.DumpDir, fmt.Sprintf("frame-%05d.png", h.presented))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, h.last); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Presented returns how many frames were submitted.
func (h *Headless) Presented() int { return h.presented }

// Polled returns how many ticks were polled.
func (h *Headless) Polled() int { return h.polled }

// Last returns the most recent composite frame.
func (h *Headless) Last() *image.RGBA { return h.last }
