package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("a, ,down+b,~select,home")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())

	assert.Equal(t, Press(KeyA), s.Poll())
	assert.Equal(t, State{}, s.Poll())
	assert.Equal(t, Press(KeyDDown|KeyB), s.Poll())
	assert.Equal(t, Hold(KeySelect), s.Poll())
	assert.Equal(t, State{HomeBlocked: true}, s.Poll())

	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, State{}, s.Poll())
}

func TestParseScriptEmpty(t *testing.T) {
	s, err := ParseScript("  ")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestParseScriptUnknownKey(t *testing.T) {
	_, err := ParseScript("A,JUMP")
	assert.EqualError(t, err, `tick 1: unknown key "JUMP"`)
}

func TestKeysString(t *testing.T) {
	assert.Equal(t, "none", Keys(0).String())
	assert.Equal(t, "A|START", (KeyA | KeyStart).String())
	k, ok := KeyByName("ZR")
	assert.True(t, ok)
	assert.Equal(t, KeyZR, k)
}
