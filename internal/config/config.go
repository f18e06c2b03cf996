package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// IconSize is the edge length of the generated icon in pixels.
const IconSize = 1024

const (
	DefaultOutputPath = "Assets.xcassets/AppIcon.appiconset/AppIcon.png"
	DefaultFontPath   = "/System/Library/Fonts/Helvetica.ttc"
)

// Config holds runtime settings. With no variables set it describes the
// reference run: Helvetica from the system font directory, output into the
// app icon set relative to the working directory.
type Config struct {
	OutputPath string `env:"APPICON_OUTPUT"    envDefault:"Assets.xcassets/AppIcon.appiconset/AppIcon.png"`
	FontPath   string `env:"APPICON_FONT"      envDefault:"/System/Library/Fonts/Helvetica.ttc"`
	Manifest   bool   `env:"APPICON_MANIFEST"  envDefault:"true"`
	Debug      bool   `env:"APPICON_DEBUG"`
	LogFile    string `env:"APPICON_LOG_FILE"`
	StdioLog   string `env:"APPICON_STDIO_LOG"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{OutputPath: DefaultOutputPath, FontPath: DefaultFontPath, Manifest: true}
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.FontPath == "" {
		cfg.FontPath = DefaultFontPath
	}
	return cfg, nil
}
