//go:build !linux

package platform

import (
	"context"
	"errors"
	"image"

	"github.com/rook-computer/pocketedit/internal/input"
)

// Device needs a Linux framebuffer; elsewhere Start always fails.
type Device struct {
	Path   string
	TPS    int
	Logger Logger
}

func NewDevice(path string, tps int) *Device {
	return &Device{Path: path, TPS: tps}
}

func (d *Device) Start(context.Context) error {
	return errors.New("framebuffer device requires linux")
}

func (d *Device) Stop() error                    { return nil }
func (d *Device) Running() bool                  { return false }
func (d *Device) Poll() input.State              { return input.State{} }
func (d *Device) Present(_, _ *image.RGBA) error { return ErrClosed }
