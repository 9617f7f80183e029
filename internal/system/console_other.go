//go:build !linux

package system

// Console is a no-op outside Linux.
type Console struct {
	Logger Logger
}

func (c *Console) Enter()   {}
func (c *Console) Restore() {}
