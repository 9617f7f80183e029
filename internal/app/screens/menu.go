// Package screens holds the editor screens built on the gui compositor.
package screens

import (
	"github.com/rook-computer/pocketedit/internal/gui"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
)

type menuEntry struct {
	label string
	open  func(m *MainMenu, c *gui.Context)
}

// MainMenu is the root screen: a list of editor sections.
type MainMenu struct {
	gui.Base
	gui.Node

	Settings *Settings

	entries  []menuEntry
	selected int
	help     *gui.Instructions
}

const (
	menuX     = 30
	menuY     = 40
	menuRow   = 30
	menuWidth = 260
)

func NewMainMenu(settings *Settings) *MainMenu {
	m := &MainMenu{Settings: settings}
	m.entries = []menuEntry{
		{label: "Extra save files for Nintendo DS and 3DS titles", open: func(m *MainMenu, c *gui.Context) {
			c.Stack.Push(NewExtraSaves(m.Settings, Groups))
		}},
		{label: "Default country", open: func(m *MainMenu, c *gui.Context) {
			m.AddOverlay(NewCountryOverlay(m.Settings))
		}},
		{label: "Reset settings", open: func(m *MainMenu, c *gui.Context) {
			if c.ShowChoiceMessage("Reset every setting?", "Extra saves will be forgotten") {
				*m.Settings = *NewSettings()
			}
		}},
	}
	m.help = gui.NewInstructions().
		AddText(render.Top, "A: Open\nStart: Quit", 200, 200, render.TextStyle{Scale: render.FontSize12, AlignX: render.TextCenter}).
		AddBox(render.Bottom, menuX-4, menuY-4, menuWidth+8, len(m.entries)*menuRow, render.ColorGrey, "Sections", 160, 200)
	return m
}

func (m *MainMenu) Selected() int { return m.selected }

func (m *MainMenu) Instructions() *gui.Instructions { return m.help }

func (m *MainMenu) DrawTop(c *gui.Context) {
	c.BackgroundTop(true)
	c.Text("pocketedit", render.TopWidth/2, 12, render.TextStyle{Scale: render.FontSize12, AlignX: render.TextCenter, AlignY: render.TextMiddle})
	c.Text("Country: "+m.Settings.CountryName(), render.TopWidth/2, 110, render.TextStyle{Scale: render.FontSize15, AlignX: render.TextCenter})
}

func (m *MainMenu) DrawBottom(c *gui.Context) {
	c.BackgroundBottom(false)
	style := render.TextStyle{Scale: render.FontSize11, AlignY: render.TextMiddle}
	for i, e := range m.entries {
		y := menuY + i*menuRow
		if i == m.selected {
			c.DrawSolidRect(menuX-4, y-2, menuWidth+8, menuRow-6, render.ColorHeaderBar)
			c.Text(">", menuX-12+c.Bob.Next(), y+menuRow/2-4, style)
			c.ScrollingText(e.label, menuX, y+menuRow/2-4, style, menuWidth)
		} else {
			c.SlicedText(e.label, menuX, y+menuRow/2-4, style, menuWidth)
		}
	}
}

func (m *MainMenu) Update(c *gui.Context, in input.State) {
	switch {
	case in.Pressed(input.KeyDDown):
		m.selected = (m.selected + 1) % len(m.entries)
	case in.Pressed(input.KeyDUp):
		m.selected = (m.selected + len(m.entries) - 1) % len(m.entries)
	case in.Pressed(input.KeyA):
		m.entries[m.selected].open(m, c)
	}
}
