// Package config resolves runtime settings from defaults, an optional TOML
// file, POCKETEDIT_* environment variables and command-line flags, in that
// order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	PlatformWindow   = "window"
	PlatformDevice   = "device"
	PlatformHeadless = "headless"
)

const (
	EnvPlatform    = "POCKETEDIT_PLATFORM"
	EnvScale       = "POCKETEDIT_SCALE"
	EnvTPS         = "POCKETEDIT_TPS"
	EnvFontPath    = "POCKETEDIT_FONT"
	EnvFontBackend = "POCKETEDIT_FONT_BACKEND"
	EnvFontSize    = "POCKETEDIT_FONT_SIZE"
	EnvFramebuffer = "POCKETEDIT_FB"
	EnvDebug       = "POCKETEDIT_DEBUG"
	EnvLogPath     = "POCKETEDIT_LOG"
	EnvStdioLog    = "POCKETEDIT_STDIO_LOG"
	EnvFrames      = "POCKETEDIT_FRAMES"
	EnvDumpDir     = "POCKETEDIT_DUMP_DIR"
)

// ErrUnknownPlatform is returned by Validate for an unsupported platform name.
var ErrUnknownPlatform = errors.New("unknown platform")

type Config struct {
	Platform    string  `toml:"platform"`
	Scale       int     `toml:"scale"`
	TPS         int     `toml:"tps"`
	FontPath    string  `toml:"font_path"`
	FontBackend string  `toml:"font_backend"`
	FontSize    float64 `toml:"font_size"`
	Framebuffer string  `toml:"framebuffer"`
	Debug       bool    `toml:"debug"`
	LogPath     string  `toml:"log_path"`
	StdioLog    string  `toml:"stdio_log"`
	Frames      int     `toml:"frames"`
	DumpDir     string  `toml:"dump_dir"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Platform:    PlatformWindow,
		Scale:       2,
		TPS:         60,
		FontBackend: "opentype",
		FontSize:    15,
		Framebuffer: "/dev/fb0",
		LogPath:     "./pocketedit-debug.log",
	}
}

// Load decodes the TOML file at path over c. Keys absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overrides c with any POCKETEDIT_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer (got %q): %w", key, v, err)
		}
		*dst = n
		return nil
	}

	str(EnvPlatform, &c.Platform)
	str(EnvFontPath, &c.FontPath)
	str(EnvFontBackend, &c.FontBackend)
	str(EnvFramebuffer, &c.Framebuffer)
	str(EnvLogPath, &c.LogPath)
	str(EnvStdioLog, &c.StdioLog)
	str(EnvDumpDir, &c.DumpDir)

	if err := integer(EnvScale, &c.Scale); err != nil {
		return err
	}
	if err := integer(EnvTPS, &c.TPS); err != nil {
		return err
	}
	if err := integer(EnvFrames, &c.Frames); err != nil {
		return err
	}
	if v, ok := lookup(EnvFontSize); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number (got %q): %w", EnvFontSize, v, err)
		}
		c.FontSize = f
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, v, err)
		}
		c.Debug = b
	}
	return nil
}

// RegisterFlags binds every field to a flag on fs, using c's current values
// as defaults so flags only override what was explicitly passed.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Platform, "platform", c.Platform, "display platform: window, device or headless")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window zoom factor")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.FontPath, "font", c.FontPath, "TTF/OTF font file (default: embedded Go Regular)")
	fs.StringVar(&c.FontBackend, "font-backend", c.FontBackend, "font rasterizer: opentype, freetype or basic")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "base font size in points")
	fs.StringVar(&c.Framebuffer, "fb", c.Framebuffer, "framebuffer device for -platform=device")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging to -log")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "debug log path")
	fs.StringVar(&c.StdioLog, "stdio-log", c.StdioLog, "redirect stdout+stderr (including panics) to this file")
	fs.IntVar(&c.Frames, "frames", c.Frames, "headless: stop after this many ticks (0 runs until quit)")
	fs.StringVar(&c.DumpDir, "dump-dir", c.DumpDir, "headless: write every frame as PNG into this directory")
}

// Validate checks value ranges. Errors name the offending key.
func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformWindow, PlatformDevice, PlatformHeadless:
	default:
		return fmt.Errorf("platform %q: %w", c.Platform, ErrUnknownPlatform)
	}
	switch c.FontBackend {
	case "opentype", "freetype", "basic":
	default:
		return fmt.Errorf("font_backend: unknown backend %q", c.FontBackend)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1 (got %d)", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be at least 1 (got %d)", c.TPS)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive (got %g)", c.FontSize)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative (got %d)", c.Frames)
	}
	return nil
}

// Resolve builds the final configuration for a binary: defaults, then the
// file named by -config, then the environment, then the remaining flags.
// Flags already defined on fs are kept and parsed along with the config
// flags.
func Resolve(fs *flag.FlagSet, args []string, base Config) (Config, error) {
	cfg := base
	var path string
	probe := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", "", "")
	scratch := cfg
	scratch.RegisterFlags(probe)
	// Flags the caller defined on fs are parsed again below.
	fs.VisitAll(func(f *flag.Flag) { probe.Var(f.Value, f.Name, f.Usage) })
	_ = probe.Parse(args)

	if path != "" {
		if err := cfg.Load(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return Config{}, err
	}

	// Parsing again over the merged values applies flags last.
	fs.String("config", path, "TOML config file")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
