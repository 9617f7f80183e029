package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/rook-computer/pocketedit/internal/render/layout"
)

// Modal is a blocking dialog. It owns the frame loop from RunModal until
// Update reports it is done.
type Modal interface {
	DrawTop(c *Context)
	DrawBottom(c *Context)
	Update(in input.State) (done bool)
}

// RunModal ends any open frame, then polls, draws and submits frames for m
// until it is done or the platform stops. If a frame was open on entry a
// fresh one is open on return, targeting the same surface.
func (c *Context) RunModal(m Modal) {
	resume := c.suspend()
	defer resume()

	c.Logger.Infof("modal", "enter %T", m)
	for c.Platform.Running() {
		in := c.poll()
		c.drawModal(m, in)
		if m.Update(in) {
			break
		}
	}
	c.Logger.Infof("modal", "exit %T", m)
}

// ShowFrame submits a single frame of m without polling input.
func (c *Context) ShowFrame(m Modal) {
	resume := c.suspend()
	defer resume()
	c.drawModal(m, input.State{})
}

func (c *Context) suspend() func() {
	if !c.frame.Open() {
		return func() {}
	}
	target := c.Current()
	if err := c.EndFrame(); err != nil {
		c.Logger.Errorf("modal", "present: %v", err)
	}
	return func() {
		c.BeginFrame()
		c.Target(target)
	}
}

func (c *Context) drawModal(m Modal, in input.State) {
	c.BeginFrame()
	c.Target(render.Top)
	m.DrawTop(c)
	c.FlushText()

	c.Target(render.Bottom)
	m.DrawBottom(c)
	c.FlushText()
	c.drawHome(in)

	if err := c.EndFrame(); err != nil {
		c.Logger.Errorf("modal", "present: %v", err)
	}
	c.Shaper.Reset()
}

const (
	messageY       = 95
	messagePairY   = 85
	messageSecondY = 105
	promptY        = 130
)

// dialog is the panel shared by every modal: a framed message on the top
// surface above a prompt line, and a plain bottom surface.
type dialog struct {
	message  string
	message2 string
	prompt   string
	promptSz float64
	waver    bool
}

func (d *dialog) DrawTop(c *Context) {
	c.BackgroundTop(false)
	panel := dialogPanel()
	c.DrawSolidRect(panel.Min.X, panel.Min.Y, panel.Dx(), panel.Dy(), render.ColorMidBlue)

	col := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if d.waver {
		col.A = c.Waver.Next()
	}
	style := render.TextStyle{Color: col, Scale: render.FontSize15, AlignX: render.TextCenter}
	cx := render.TopWidth / 2
	if d.message2 == "" {
		c.Text(d.message, cx, messageY, style)
	} else {
		c.Text(d.message, cx, messagePairY, style)
		c.Text(d.message2, cx, messageSecondY, style)
	}

	size := d.promptSz
	if size == 0 {
		size = render.FontSize11
	}
	c.Text(d.prompt, cx, promptY, render.TextStyle{Scale: size, AlignX: render.TextCenter})
}

func (d *dialog) DrawBottom(c *Context) {
	c.BackgroundBottom(false)
}

// dialogPanel is the message box on the top surface.
func dialogPanel() image.Rectangle {
	return layout.Inset(image.Rect(0, 40, render.TopWidth, 180), 20)
}

type choiceModal struct {
	dialog
	result bool
}

func (m *choiceModal) Update(in input.State) bool {
	switch {
	case in.Pressed(input.KeyA):
		m.result = true
		return true
	case in.Pressed(input.KeyB):
		m.result = false
		return true
	}
	return false
}

type acknowledgeModal struct {
	dialog
}

func (m *acknowledgeModal) Update(in input.State) bool { return in.Pressed(input.KeyA) }

type staticModal struct {
	dialog
}

func (staticModal) Update(input.State) bool { return true }

// ShowChoiceMessage asks a yes/no question: A confirms, B cancels. It
// returns false when the platform stops before an answer.
func (c *Context) ShowChoiceMessage(message, message2 string) bool {
	m := &choiceModal{dialog: dialog{message: message, message2: message2, prompt: "A: Continue    B: Cancel", waver: true}}
	c.RunModal(m)
	return m.result
}

// Warn shows a message until A is pressed.
func (c *Context) Warn(message, message2 string) {
	c.RunModal(&acknowledgeModal{dialog{message: message, message2: message2, prompt: "A: Continue", waver: true}})
}

// Error shows message with a numeric result code until A is pressed.
func (c *Context) Error(message string, code uint32) {
	c.RunModal(&acknowledgeModal{dialog{
		message:  message,
		message2: fmt.Sprintf("Error code: 0x%08X", code),
		prompt:   "A: Continue",
		waver:    true,
	}})
}

// WaitFrame submits one "please wait" frame.
func (c *Context) WaitFrame(message, message2 string) {
	c.ShowFrame(&staticModal{dialog{message: message, message2: message2, prompt: "Please wait..."}})
}

// ShowRestoreProgress submits one frame of save progress.
func (c *Context) ShowRestoreProgress(partial, total uint32) {
	c.ShowFrame(&staticModal{dialog{
		message:  "Saving...",
		prompt:   fmt.Sprintf("Progress: %d/%d", partial, total),
		promptSz: render.FontSize12,
	}})
}

// ShowDownloadProgress submits one frame of download progress for path.
func (c *Context) ShowDownloadProgress(path string, partial, total uint32) {
	c.ShowFrame(&staticModal{dialog{
		message:  fmt.Sprintf("Downloading %s", path),
		prompt:   fmt.Sprintf("Progress: %d/%d", partial, total),
		promptSz: render.FontSize12,
	}})
}
