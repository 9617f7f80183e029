package screens

import (
	"fmt"

	"github.com/rook-computer/pocketedit/internal/gui"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
)

const (
	savesVisible = 6
	savesX       = 29
	savesY       = 97
	savesRowH    = 17
	savesWidth   = 169
)

// ExtraSaves manages additional save file paths per game. L and R change
// the game group, left and right switch between the two versions of the
// group and up and down pick an entry. Y adds one, X deletes the selected
// one and A shows it as a QR code.
type ExtraSaves struct {
	gui.Base
	gui.Node

	// NewPath returns the path to add for a game id.
	NewPath func(id string, n int) string

	settings *Settings
	groups   []Group
	group    int
	second   bool
	selected int
	first    int
	help     *gui.Instructions
}

func NewExtraSaves(settings *Settings, groups []Group) *ExtraSaves {
	s := &ExtraSaves{
		settings: settings,
		groups:   groups,
		selected: -1,
		NewPath: func(id string, n int) string {
			return fmt.Sprintf("/roms/%s/%s-extra-%d.sav", id, id, n)
		},
	}
	s.help = gui.NewInstructions().
		AddText(render.Bottom, "L/R: Change game\nY: Add save\nX: Delete save\nA: Share path\nB: Back", 248, 120, render.TextStyle{Scale: render.FontSize11, AlignX: render.TextCenter}).
		AddBox(render.Top, 127, 95, 146, 52, render.ColorGrey, "Game version", 200, 180)
	s.reload()
	return s
}

func (s *ExtraSaves) Instructions() *gui.Instructions { return s.help }

// ID returns the game id currently shown.
func (s *ExtraSaves) ID() string {
	g := s.groups[s.group]
	if s.second && !g.Single() {
		return g.IDs[1]
	}
	return g.IDs[0]
}

func (s *ExtraSaves) title() string {
	g := s.groups[s.group]
	if s.second && !g.Single() {
		return g.Titles[1]
	}
	return g.Titles[0]
}

func (s *ExtraSaves) saves() []string { return s.settings.ExtraSaves[s.ID()] }

// Selection returns the selected row and the index of the first visible
// entry. The row is -1 when the list is empty.
func (s *ExtraSaves) Selection() (row, first int) { return s.selected, s.first }

func (s *ExtraSaves) reload() {
	s.selected = -1
	s.first = 0
	if len(s.saves()) > 0 {
		s.selected = 0
	}
}

func (s *ExtraSaves) setGroup(g int) {
	s.group = (g + len(s.groups)) % len(s.groups)
	s.second = false
	s.reload()
}

func drawIcon(c *gui.Context, label string, x, y int) {
	c.DrawSolidRect(x, y, 48, 48, render.ColorLineBlue)
	c.Text(label, x+24, y+30, render.TextStyle{Scale: render.FontSize11, AlignX: render.TextCenter})
}

func (s *ExtraSaves) DrawTop(c *gui.Context) {
	c.BackgroundTop(true)
	g := s.groups[s.group]
	if g.Single() {
		drawIcon(c, g.Labels[0], 176, 96)
		c.Selector.Draw(c.Renderer, 175, 95)
	} else {
		drawIcon(c, g.Labels[0], 128, 96)
		drawIcon(c, g.Labels[1], 224, 96)
		if s.second {
			c.Selector.Draw(c.Renderer, 223, 95)
		} else {
			c.Selector.Draw(c.Renderer, 127, 95)
		}
	}
	c.Text("Extra saves", render.TopWidth/2, 12, render.TextStyle{Scale: render.FontSize12, AlignX: render.TextCenter, AlignY: render.TextMiddle})
}

func (s *ExtraSaves) DrawBottom(c *gui.Context) {
	c.BackgroundBottom(true)
	c.DrawSolidRect(22, 94, 178, 6*savesRowH+4, render.ColorMidBlue)
	c.SlicedText(s.title(), 27, 26, render.TextStyle{Scale: render.FontSize12}, 210)

	if s.selected > -1 {
		c.DrawSolidRect(24, 96+savesRowH*s.selected, 174, 16, render.ColorHeaderBar)
	}

	style := render.TextStyle{Scale: render.FontSize11}
	saves := s.saves()
	for i := s.first; i < s.first+savesVisible && i < len(saves); i++ {
		y := savesY + (i-s.first)*savesRowH
		if i-s.first == s.selected {
			c.ScrollingText(saves[i], savesX, y, style, savesWidth)
		} else {
			c.SlicedText(saves[i], savesX, y, style, savesWidth)
		}
	}

	if s.selected > 0 && s.first > 0 {
		c.DrawSolidRect(191, 102, 4, 5, render.ColorHeaderBar)
		c.DrawSolidTriangle(189, 102, 197, 102, 193, 97, render.ColorHeaderBar)
	}
	if s.selected < 5 && s.first+5 < len(saves)-1 {
		c.DrawSolidRect(191, 186, 4, 5, render.ColorHeaderBar)
		c.DrawSolidTriangle(189, 191, 197, 191, 193, 196, render.ColorHeaderBar)
	}

	c.Text("Y: Add save", 260, 113, render.TextStyle{Scale: render.FontSize11, AlignX: render.TextCenter})
	c.Text("X: Delete save", 260, 172, render.TextStyle{Scale: render.FontSize11, AlignX: render.TextCenter, AlignY: render.TextMiddle, MaxWidth: 94})
	c.Text("Press Select for help", render.BottomWidth/2, 223, render.TextStyle{Scale: render.FontSize11, AlignX: render.TextCenter})
}

func (s *ExtraSaves) Update(c *gui.Context, in input.State) {
	n := len(s.saves())
	switch {
	case in.Pressed(input.KeyDLeft) || in.Pressed(input.KeyDRight):
		s.second = !s.second
		s.reload()
		n = len(s.saves())
	case in.Pressed(input.KeyR):
		s.setGroup(s.group + 1)
		n = len(s.saves())
	case in.Pressed(input.KeyL):
		s.setGroup(s.group - 1)
		n = len(s.saves())
	}

	switch {
	case in.Pressed(input.KeyDDown):
		if s.selected == savesVisible-2 && s.first+savesVisible-1 < n-1 {
			s.first++
		} else if s.first+s.selected < n-1 {
			s.selected++
		}
	case in.Pressed(input.KeyDUp):
		if s.selected == 1 && s.first > 0 {
			s.first--
		} else if s.selected > 0 {
			s.selected--
		}
	}

	if n == 0 {
		s.selected = -1
		s.first = 0
	} else if s.selected == -1 {
		s.selected = 0
	}

	switch {
	case in.Pressed(input.KeyY):
		id := s.ID()
		s.settings.ExtraSaves[id] = append(s.settings.ExtraSaves[id], s.NewPath(id, n+1))
		if s.selected == -1 {
			s.selected = 0
		}
	case in.Pressed(input.KeyX) && s.selected != -1:
		idx := s.first + s.selected
		path := s.saves()[idx]
		if c.ShowChoiceMessage("Delete this extra save entry?", "'"+path+"'") {
			id := s.ID()
			saves := s.settings.ExtraSaves[id]
			s.settings.ExtraSaves[id] = append(saves[:idx:idx], saves[idx+1:]...)
			s.reload()
		}
	case in.Pressed(input.KeyA) && s.selected != -1:
		s.AddOverlay(NewQROverlay(s.saves()[s.first+s.selected]))
	case in.Pressed(input.KeyB):
		if err := c.Back(); err != nil {
			c.Logger.Errorf("screens", "back from extra saves: %v", err)
		}
	}
}
