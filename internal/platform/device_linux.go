//go:build linux

package platform

import (
	"context"
	"image"
	"sync"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/rook-computer/pocketedit/internal/system"
)

// Device presents to a Linux framebuffer and reads evdev input, pacing
// ticks with a ticker.
type Device struct {
	Path   string
	TPS    int
	Logger Logger

	mu        sync.Mutex
	dev       *fb.Device
	keys      *input.Evdev
	console   system.Console
	composite *image.RGBA
	ticker    *time.Ticker
	done      chan struct{}
	cancel    context.CancelFunc
	running   atomic.Bool
	lastLog   time.Time
	frames    int
}

func NewDevice(path string, tps int) *Device {
	return &Device{Path: path, TPS: tps}
}

func (d *Device) Start(ctx context.Context) error {
	if d.Logger == nil {
		d.Logger = noopLogger{}
	}
	if d.Path == "" {
		d.Path = "/dev/fb0"
	}
	if d.TPS <= 0 {
		d.TPS = 60
	}

	dev, err := fb.Open(d.Path)
	if err != nil {
		return err
	}
	d.dev = dev
	bounds := dev.Bounds()
	d.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	// Switch console to KD_GRAPHICS to suppress the hardware cursor.
	d.console = system.Console{Logger: d.Logger}
	d.console.Enter()

	inputCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.keys = input.NewEvdev(d.Logger)
	if err := d.keys.Start(inputCtx); err != nil {
		d.Logger.Errorf("input", "evdev unavailable: %v", err)
	}

	d.ticker = time.NewTicker(time.Second / time.Duration(d.TPS))
	d.done = make(chan struct{})
	d.lastLog = time.Now()
	d.running.Store(true)

	go func() {
		<-inputCtx.Done()
		_ = d.Stop()
	}()
	return nil
}

func (d *Device) Stop() error {
	if !d.running.Swap(false) {
		return nil
	}
	close(d.done)
	if d.cancel != nil {
		d.cancel()
	}
	if d.ticker != nil {
		d.ticker.Stop()
	}

	// Present may be mid-blit on the frame loop goroutine.
	d.mu.Lock()
	defer d.mu.Unlock()
	d.console.Restore()
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	return nil
}

func (d *Device) Running() bool { return d.running.Load() }

// Poll waits for the next tick. It returns at once after Stop.
func (d *Device) Poll() input.State {
	if d.ticker != nil {
		select {
		case <-d.ticker.C:
		case <-d.done:
		}
	}
	if d.keys == nil {
		return input.State{}
	}
	return d.keys.Poll()
}

// Present stacks both surfaces and nearest-neighbor scales them onto the
// framebuffer.
func (d *Device) Present(top, bottom *image.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running.Load() || d.dev == nil {
		return ErrClosed
	}
	d.composite = render.Compose(d.composite, top, bottom)
	render.ScaleInto(d.dev, d.composite)

	d.frames++
	if time.Since(d.lastLog) > time.Second {
		d.Logger.Infof("fb", "heartbeat, frames=%d", d.frames)
		d.lastLog = time.Now()
	}
	return nil
}
