package screens

import (
	"image"
	"strings"

	"github.com/rook-computer/pocketedit/internal/gui"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/rook-computer/pocketedit/internal/render/layout"
)

const (
	countryPerPage = 40
	countryColumns = 2
	countryRowH    = 12
	searchLetters  = "abcdefghijklmnopqrstuvwxyz "
)

// CountryOverlay picks the default country from a paged two column list.
// The list can be narrowed by a name prefix: ZL and ZR choose a letter,
// X appends it and Y deletes the last one.
type CountryOverlay struct {
	gui.Node

	settings *Settings
	all      []Country
	shown    []Country
	cursor   pagedCursor
	search   string
	letter   int
	help     *gui.Instructions
}

func NewCountryOverlay(settings *Settings) *CountryOverlay {
	o := &CountryOverlay{
		settings: settings,
		all:      Countries,
		shown:    Countries,
		cursor:   pagedCursor{perPage: countryPerPage, columns: countryColumns},
	}
	for i, c := range o.all {
		if c.Code == settings.Country {
			o.cursor.full = i
		}
	}
	o.help = gui.NewInstructions().
		AddText(render.Top, "A: Select\nB: Back", 200, 200, render.TextStyle{Scale: render.FontSize12, AlignX: render.TextCenter}).
		AddBox(render.Bottom, 75, 30, 170, 23, render.ColorGrey, "Search", 160, 80)
	return o
}

// Shown returns the countries matching the current search.
func (o *CountryOverlay) Shown() []Country { return o.shown }

func (o *CountryOverlay) Search() string { return o.search }

func (o *CountryOverlay) Instructions() *gui.Instructions { return o.help }

func (o *CountryOverlay) HandlesInput() bool   { return true }
func (o *CountryOverlay) ReplacesTop() bool    { return true }
func (o *CountryOverlay) ReplacesBottom() bool { return false }

// countryCell is the rectangle of entry i of a page: the first half of the
// page fills the left column top to bottom, the rest the right one.
func countryCell(i int) image.Rectangle {
	rows := countryPerPage / countryColumns
	cols := layout.Columns(image.Rect(2, 0, render.TopWidth, rows*countryRowH), countryColumns)
	return layout.Rows(cols[i/rows], countryRowH, i%rows)
}

func (o *CountryOverlay) DrawTop(c *gui.Context) {
	c.BackgroundTop(false)

	cell := countryCell(o.cursor.index())
	x, y, w, h := cell.Min.X, cell.Min.Y, cell.Dx()-1, countryRowH-1
	c.DrawSolidRect(x, y, w, h, render.ColorMaskBlack)
	c.DrawSolidRect(x, y, w, 1, render.ColorYellow)
	c.DrawSolidRect(x, y, 1, h, render.ColorYellow)
	c.DrawSolidRect(x, y+h-1, w, 1, render.ColorYellow)
	c.DrawSolidRect(x+w-1, y, 1, h, render.ColorYellow)

	style := render.TextStyle{Scale: render.FontSize9}
	start := o.cursor.page() * countryPerPage
	for i := 0; i < countryPerPage && start+i < len(o.shown); i++ {
		cell := countryCell(i)
		c.SlicedText(o.shown[start+i].Label(), cell.Min.X+2, cell.Min.Y, style, cell.Dx()-5)
	}
}

func (o *CountryOverlay) DrawBottom(c *gui.Context) {
	c.Dim()
	c.Text("Pick the default country", render.BottomWidth/2, 115, render.TextStyle{Scale: render.FontSize18, AlignX: render.TextCenter})
	c.DrawSolidRect(75, 30, 170, 23, render.ColorGrey)
	c.Text(o.search, 95, 32, render.TextStyle{Scale: render.FontSize12})
	c.Text("Letter: "+strings.ToUpper(string(searchLetters[o.letter])), 160, 60, render.TextStyle{Scale: render.FontSize11, AlignX: render.TextCenter})
}

func (o *CountryOverlay) Update(c *gui.Context, in input.State) {
	switch {
	case in.Pressed(input.KeyZR):
		o.letter = (o.letter + 1) % len(searchLetters)
	case in.Pressed(input.KeyZL):
		o.letter = (o.letter + len(searchLetters) - 1) % len(searchLetters)
	case in.Pressed(input.KeyX):
		o.setSearch(o.search + string(searchLetters[o.letter]))
	case in.Pressed(input.KeyY) && o.search != "":
		o.setSearch(o.search[:len(o.search)-1])
	}

	o.cursor.update(in, len(o.shown))

	switch {
	case in.Pressed(input.KeyA):
		if len(o.shown) > 0 {
			o.settings.Country = o.shown[o.cursor.full].Code
		}
		o.Close()
	case in.Pressed(input.KeyB):
		o.Close()
	}
}

func (o *CountryOverlay) setSearch(search string) {
	o.search = search
	if search == "" {
		o.shown = o.all
	} else {
		o.shown = nil
		for _, c := range o.all {
			if strings.HasPrefix(strings.ToLower(c.Name), search) {
				o.shown = append(o.shown, c)
			}
		}
	}
	if o.cursor.full >= len(o.shown) {
		o.cursor.full = 0
	}
}
