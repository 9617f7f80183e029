// Package platform connects the compositor to a display and an input device.
package platform

import (
	"context"
	"errors"
	"image"

	"github.com/rook-computer/pocketedit/internal/input"
)

// ErrClosed is returned by Present after the platform stopped.
var ErrClosed = errors.New("platform closed")

// Platform is the frame loop's view of the device. Poll blocks until the
// next tick is due.
type Platform interface {
	Start(ctx context.Context) error
	Stop() error
	Running() bool
	Poll() input.State
	Present(top, bottom *image.RGBA) error
}

// MainThreadRunner is implemented by platforms whose event loop must own
// the calling goroutine; the frame loop then runs inside fn on another
// goroutine.
type MainThreadRunner interface {
	RunMain(fn func() error) error
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}
