//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyHome = 102
	btnMode = 0x13c
)

// evdevKeys maps keyboard and gamepad codes to logical buttons.
var evdevKeys = map[uint16]Keys{
	45:    KeyA,      // KEY_X
	44:    KeyB,      // KEY_Z
	31:    KeyX,      // KEY_S
	30:    KeyY,      // KEY_A
	16:    KeyL,      // KEY_Q
	17:    KeyR,      // KEY_W
	28:    KeyStart,  // KEY_ENTER
	54:    KeySelect, // KEY_RIGHTSHIFT
	14:    KeySelect, // KEY_BACKSPACE
	103:   KeyDUp,
	108:   KeyDDown,
	105:   KeyDLeft,
	106:   KeyDRight,
	0x131: KeyA, // BTN_EAST
	0x130: KeyB, // BTN_SOUTH
	0x133: KeyX, // BTN_NORTH
	0x134: KeyY, // BTN_WEST
	0x136: KeyL, // BTN_TL
	0x137: KeyR, // BTN_TR
	0x138: KeyZL,
	0x139: KeyZR,
	0x13a: KeySelect,
	0x13b: KeyStart,
	0x220: KeyDUp,
	0x221: KeyDDown,
	0x222: KeyDLeft,
	0x223: KeyDRight,
}

type evdevLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Evdev reads key events from /dev/input/event* devices. Each device keeps
// its own held mask; a logical key is held while any device holds it.
type Evdev struct {
	Logger evdevLogger

	tracker Tracker
	mu      sync.Mutex
	held    map[int]Keys
}

func NewEvdev(logger evdevLogger) *Evdev {
	return &Evdev{Logger: logger, held: make(map[int]Keys)}
}

// Start opens every event device and reads it until ctx is done.
func (e *Evdev) Start(ctx context.Context) error {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no evdev devices found")
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4
	if eventSize <= 0 {
		eventSize = 24
	}

	opened := 0
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			if e.Logger != nil {
				e.Logger.Errorf("input", "open %s: %v", path, err)
			}
			continue
		}
		go e.read(ctx, opened, fd, path, tvSize, eventSize)
		opened++
	}
	if opened == 0 {
		return errors.New("no readable evdev devices")
	}
	if e.Logger != nil {
		e.Logger.Infof("input", "reading %d evdev devices", opened)
	}
	return nil
}

func (e *Evdev) read(ctx context.Context, dev, fd int, path string, tvSize, eventSize int) {
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if typ != evKey {
				continue
			}
			e.handle(dev, code, value)
		}
	}
}

// handle applies one key event from device dev; value is 1 on press, 0 on
// release, 2 on repeat.
func (e *Evdev) handle(dev int, code uint16, value int32) {
	if code == keyHome || code == btnMode {
		if value == 1 {
			e.tracker.BlockHome()
		}
		return
	}
	k, ok := evdevKeys[code]
	if !ok || value == 2 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if value == 1 {
		e.held[dev] |= k
	} else {
		e.held[dev] &^= k
	}
	var all Keys
	for _, held := range e.held {
		all |= held
	}
	e.tracker.Observe(all)
}

func (e *Evdev) Poll() State { return e.tracker.Take() }
