package screens

import (
	"context"
	"testing"

	"github.com/rook-computer/pocketedit/internal/gui"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/platform"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, states ...input.State) (*gui.Context, *platform.Headless) {
	t.Helper()
	h := platform.NewHeadless(input.NewScript(states...), 0)
	require.NoError(t, h.Start(context.Background()))
	r := render.NewRenderer(render.NewFontShaper(render.BasicFaces()))
	return gui.NewContext(r, h, nil), h
}

func step(t *testing.T, c *gui.Context, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := c.Step()
		require.NoError(t, err)
	}
}

func TestMainMenuOpensCountryOverlay(t *testing.T) {
	settings := NewSettings()
	c, _ := newContext(t,
		input.Press(input.KeyDDown),
		input.Press(input.KeyA),
		input.Press(input.KeyDDown),
		input.Press(input.KeyA),
	)
	menu := NewMainMenu(settings)
	root := c.Stack.Push(menu)

	step(t, c, 2)
	require.NotNil(t, root.Overlay())
	assert.IsType(t, &CountryOverlay{}, root.Overlay().Base())
	assert.True(t, root.ReplacesTop())

	step(t, c, 2)
	assert.Nil(t, root.Overlay())
	assert.Equal(t, 50, settings.Country)
	assert.Equal(t, "Uruguay", settings.CountryName())
}

func TestMainMenuWraps(t *testing.T) {
	c, _ := newContext(t, input.Press(input.KeyDUp))
	menu := NewMainMenu(NewSettings())
	c.Stack.Push(menu)
	step(t, c, 1)
	assert.Equal(t, 2, menu.Selected())
}

func TestMainMenuHelpSkipsUpdate(t *testing.T) {
	c, h := newContext(t, input.State{Held: input.KeySelect | input.KeyDDown, Down: input.KeyDDown})
	menu := NewMainMenu(NewSettings())
	c.Stack.Push(menu)
	step(t, c, 1)
	assert.Equal(t, 0, menu.Selected())
	assert.Equal(t, 1, h.Presented())
}

func TestMainMenuPushesExtraSaves(t *testing.T) {
	c, _ := newContext(t, input.Press(input.KeyA), input.Press(input.KeyB))
	c.Stack.Push(NewMainMenu(NewSettings()))

	step(t, c, 1)
	require.Equal(t, 2, c.Stack.Len())
	assert.IsType(t, &ExtraSaves{}, c.Stack.Top().Base())

	step(t, c, 1)
	assert.Equal(t, 1, c.Stack.Len())
}

func TestCountrySearchByPrefix(t *testing.T) {
	o := NewCountryOverlay(NewSettings())
	o.Update(nil, input.Press(input.KeyX))
	assert.Equal(t, "a", o.Search())
	names := []string{}
	for _, c := range o.Shown() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Anguilla", "Antigua and Barbuda", "Argentina", "Aruba", "Albania", "Australia", "Austria"}, names)

	o.Update(nil, input.Press(input.KeyZR))
	o.Update(nil, input.Press(input.KeyZR))
	o.Update(nil, input.Press(input.KeyZR))
	o.Update(nil, input.Press(input.KeyX))
	assert.Equal(t, "ad", o.Search())
	assert.Empty(t, o.Shown())

	o.Update(nil, input.Press(input.KeyY))
	o.Update(nil, input.Press(input.KeyY))
	assert.Equal(t, "", o.Search())
	assert.Len(t, o.Shown(), len(Countries))
}

func TestCountryCancelKeepsSetting(t *testing.T) {
	settings := NewSettings()
	c, _ := newContext(t, input.Press(input.KeyDDown), input.Press(input.KeyB))
	menu := NewMainMenu(settings)
	root := c.Stack.Push(menu)
	menu.AddOverlay(NewCountryOverlay(settings))

	step(t, c, 2)
	assert.Nil(t, root.Overlay())
	assert.Equal(t, 49, settings.Country)
}

func TestPagedCursor(t *testing.T) {
	p := pagedCursor{perPage: 40, columns: 2}
	p.update(input.Press(input.KeyDRight), 100)
	assert.Equal(t, 20, p.full)
	p.update(input.Press(input.KeyR), 100)
	assert.Equal(t, 60, p.full)
	assert.Equal(t, 1, p.page())
	assert.Equal(t, 20, p.index())
	p.update(input.Press(input.KeyR), 100)
	p.update(input.Press(input.KeyR), 100)
	assert.Equal(t, 99, p.full)
	p.update(input.Press(input.KeyDUp), 0)
	assert.Equal(t, 0, p.full)
}
