package gui

import (
	"context"
	"testing"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/platform"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/stretchr/testify/require"
)

// recorder appends every call it receives to a shared log.
type recorder struct {
	Node
	name           string
	log            *[]string
	handlesInput   bool
	replacesTop    bool
	replacesBottom bool
	help           *Instructions
	onUpdate       func(c *Context, in input.State)
	onDrawTop      func(c *Context)
	disposed       bool
}

func newRecorder(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log, handlesInput: true}
}

func (s *recorder) DrawTop(c *Context) {
	*s.log = append(*s.log, s.name+".DrawTop")
	if s.onDrawTop != nil {
		s.onDrawTop(c)
	}
}

func (s *recorder) DrawBottom(c *Context) {
	*s.log = append(*s.log, s.name+".DrawBottom")
}

func (s *recorder) Update(c *Context, in input.State) {
	*s.log = append(*s.log, s.name+".Update")
	if s.onUpdate != nil {
		s.onUpdate(c, in)
	}
}

func (s *recorder) HandlesInput() bool          { return s.handlesInput }
func (s *recorder) ReplacesTop() bool           { return s.replacesTop }
func (s *recorder) ReplacesBottom() bool        { return s.replacesBottom }
func (s *recorder) Instructions() *Instructions { return s.help }
func (s *recorder) Dispose()                    { s.disposed = true }

func newTestContext(t *testing.T, states ...input.State) (*Context, *platform.Headless) {
	t.Helper()
	h := platform.NewHeadless(input.NewScript(states...), 0)
	require.NoError(t, h.Start(context.Background()))
	r := render.NewRenderer(render.NewFontShaper(render.BasicFaces()))
	return NewContext(r, h, nil), h
}
