//go:build !linux

package input

import (
	"context"
	"errors"
)

type evdevLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Evdev is only available on Linux.
type Evdev struct {
	Logger evdevLogger
}

func NewEvdev(logger evdevLogger) *Evdev { return &Evdev{Logger: logger} }

func (e *Evdev) Start(ctx context.Context) error {
	return errors.New("evdev input is only supported on linux")
}

func (e *Evdev) Poll() State { return State{} }
