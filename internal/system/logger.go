// Package system wraps the OS facilities the framebuffer build needs.
package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}
