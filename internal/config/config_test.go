package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pocketedit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "/dev/fb0", cfg.Framebuffer)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeFile(t, `
platform = "headless"
frames = 12
font_size = 13.5
`)
	cfg := Default()
	require.NoError(t, cfg.Load(path))
	assert.Equal(t, PlatformHeadless, cfg.Platform)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, 13.5, cfg.FontSize)
	assert.Equal(t, 60, cfg.TPS)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeFile(t, `fps = 30`)
	cfg := Default()
	err := cfg.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "fps"`)
}

func TestLoadWrapsParseError(t *testing.T) {
	path := writeFile(t, `platform = `)
	cfg := Default()
	err := cfg.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		EnvPlatform: "device",
		EnvTPS:      "30",
		EnvDebug:    "true",
		EnvFontSize: "12",
		EnvScale:    "",
	})))
	assert.Equal(t, PlatformDevice, cfg.Platform)
	assert.Equal(t, 30, cfg.TPS)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 12.0, cfg.FontSize)
	assert.Equal(t, 2, cfg.Scale)
}

func TestApplyEnvNamesBadKey(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{EnvFrames: "many"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvFrames)

	err = cfg.ApplyEnv(env(map[string]string{EnvDebug: "sometimes"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDebug)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Platform = "console"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownPlatform)

	cfg = Default()
	cfg.Scale = 0
	assert.ErrorContains(t, cfg.Validate(), "scale")

	cfg = Default()
	cfg.FontBackend = "bitmap"
	assert.ErrorContains(t, cfg.Validate(), "font_backend")
}

func TestResolvePrecedence(t *testing.T) {
	path := writeFile(t, `
platform = "headless"
tps = 20
scale = 3
`)
	t.Setenv(EnvTPS, "40")

	fs := flag.NewFlagSet("pocketedit", flag.ContinueOnError)
	cfg, err := Resolve(fs, []string{"-config", path, "-scale", "4"}, Default())
	require.NoError(t, err)
	assert.Equal(t, PlatformHeadless, cfg.Platform)
	assert.Equal(t, 40, cfg.TPS)
	assert.Equal(t, 4, cfg.Scale)
}

func TestResolveValidates(t *testing.T) {
	fs := flag.NewFlagSet("pocketedit", flag.ContinueOnError)
	_, err := Resolve(fs, []string{"-platform", "toaster"}, Default())
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestResolveKeepsCallerFlags(t *testing.T) {
	path := writeFile(t, `frames = 7`)

	fs := flag.NewFlagSet("simulator", flag.ContinueOnError)
	script := fs.String("script", "", "")
	cfg, err := Resolve(fs, []string{"-script", "A,B", "-config", path}, Default())
	require.NoError(t, err)
	assert.Equal(t, "A,B", *script)
	assert.Equal(t, 7, cfg.Frames)
}
