package gui

import "errors"

var (
	// ErrLastScreen is returned by Pop when it would empty the stack.
	ErrLastScreen = errors.New("cannot pop the last screen")
	ErrEmptyStack = errors.New("screen stack is empty")
)

// Stack is the navigation stack; only the top entry is drawn and updated.
type Stack struct {
	Logger Logger

	screens []*Replaceable
}

// Push wraps s and makes it the active screen.
func (s *Stack) Push(sc Screen) *Replaceable {
	r := Wrap(sc)
	s.screens = append(s.screens, r)
	if s.Logger != nil {
		s.Logger.Infof("stack", "push %T, depth=%d", r.base, len(s.screens))
	}
	return r
}

// Pop disposes the active screen. The last screen is never popped.
func (s *Stack) Pop() error {
	switch len(s.screens) {
	case 0:
		return ErrEmptyStack
	case 1:
		return ErrLastScreen
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	top.Dispose()
	if s.Logger != nil {
		s.Logger.Infof("stack", "pop %T, depth=%d", top.base, len(s.screens))
	}
	return nil
}

// Top returns the active screen. It panics on an empty stack.
func (s *Stack) Top() *Replaceable {
	if len(s.screens) == 0 {
		panic("gui: Top on empty screen stack")
	}
	return s.screens[len(s.screens)-1]
}

func (s *Stack) Len() int { return len(s.screens) }
