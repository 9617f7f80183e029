package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var vtPaths = []string{"/dev/tty", "/dev/tty0"}

// Console switches the active virtual terminal between text and graphics
// mode around a framebuffer session.
type Console struct {
	Logger Logger

	entered bool
}

// Enter sets KD_GRAPHICS and hides the cursor. Failures are logged, the
// framebuffer still works with a visible cursor.
func (c *Console) Enter() {
	if err := setMode(kdGraphics); err != nil {
		c.errorf("KD_GRAPHICS failed: %v", err)
	} else {
		c.infof("KD_GRAPHICS set")
	}
	if err := writeVT("\x1b[?25l"); err != nil {
		c.errorf("hide cursor failed: %v", err)
	}
	c.entered = true
}

// Restore undoes Enter. It is a no-op when Enter was never called.
func (c *Console) Restore() {
	if !c.entered {
		return
	}
	c.entered = false
	if err := setMode(kdText); err != nil {
		c.errorf("KD_TEXT failed: %v", err)
	} else {
		c.infof("KD_TEXT set")
	}
	if err := writeVT("\x1b[?25h"); err != nil {
		c.errorf("show cursor failed: %v", err)
	}
}

func (c *Console) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("tty", format, args...)
	}
}

func (c *Console) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("tty", format, args...)
	}
}

func setMode(mode int) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %w", lastErr)
}
