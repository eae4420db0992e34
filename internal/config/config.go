package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/benoitkugler/svg2excalidraw/convert"
	"github.com/benoitkugler/svg2excalidraw/idgen"
	"github.com/benoitkugler/svg2excalidraw/scene"
)

// Prefix of the environment variables, as in SVG2EXCALIDRAW_INPUT_DIR.
const Prefix = "SVG2EXCALIDRAW"

type Config struct {
	InputDir       string  `envconfig:"INPUT_DIR" default:"vendor/icons/assets"`
	OutputDir      string  `envconfig:"OUTPUT_DIR" default:"artifacts/excalidraw"`
	PreserveColors bool    `envconfig:"PRESERVE_COLORS" default:"false"`
	Workers        int     `envconfig:"WORKERS" default:"0"`
	Order          string  `envconfig:"ORDER" default:"layered"`
	Containment    string  `envconfig:"CONTAINMENT" default:"bounds"`
	Strict         bool    `envconfig:"STRICT" default:"false"`
	Ring           bool    `envconfig:"RING" default:"true"`
	IDStyle        string  `envconfig:"ID_STYLE" default:"uuid"`
	Seed           int64   `envconfig:"SEED" default:"0"`
	CubicSteps     int     `envconfig:"CUBIC_STEPS" default:"6"`
	Epsilon        float64 `envconfig:"EPSILON" default:"0.2"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Options(); err != nil {
		return nil, err
	}
	if _, err := idgen.ByName(cfg.IDStyle, cfg.Seed); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options returns the conversion options described by the configuration.
// The filled flag and the color policies are chosen per file.
func (cfg *Config) Options() (convert.Options, error) {
	opts := convert.DefaultOptions()
	opts.CubicSteps = cfg.CubicSteps
	opts.Epsilon = cfg.Epsilon
	opts.Strict = cfg.Strict
	opts.Ring = cfg.Ring

	switch cfg.Order {
	case "", "layered":
		opts.Order = scene.Layered
	case "document":
		opts.Order = scene.DocumentOrder
	default:
		return opts, fmt.Errorf("invalid order %q (expected layered or document)", cfg.Order)
	}
	switch cfg.Containment {
	case "", "bounds":
		opts.Containment = scene.BoundsContainment
	case "center":
		opts.Containment = scene.CenterContainment
	default:
		return opts, fmt.Errorf("invalid containment %q (expected bounds or center)", cfg.Containment)
	}
	return opts, nil
}

// NewIDs returns the identifier source of one file.
// Seeded sources restart from the same seed for every file,
// so that the output of a file does not depend on the others.
func (cfg *Config) NewIDs(string) idgen.Source {
	ids, err := idgen.ByName(cfg.IDStyle, cfg.Seed)
	if err != nil { // checked by Load
		return idgen.Random{}
	}
	return ids
}

// Level parses LogLevel, defaulting to info.
func (cfg *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
