package gui

// FrameScope tracks the begin/end bracket around one submitted frame.
// Unbalanced calls are programming errors and panic.
type FrameScope struct {
	open bool
}

func (f *FrameScope) Begin() {
	if f.open {
		panic("gui: BeginFrame while a frame is open")
	}
	f.open = true
}

func (f *FrameScope) End() {
	if !f.open {
		panic("gui: EndFrame without an open frame")
	}
	f.open = false
}

func (f *FrameScope) Open() bool { return f.open }
