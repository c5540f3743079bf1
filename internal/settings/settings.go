// Package settings resolves host options from an optional .env file, the
// environment and command line flags, in that order of precedence.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mechtide/game"
)

// Environment variables read by Load
const (
	EnvVariant = "MECHTIDE_VARIANT"
	EnvAssets  = "MECHTIDE_ASSETS"
	EnvDebug   = "MECHTIDE_DEBUG"
	EnvSeed    = "MECHTIDE_SEED"
)

// Config presets selectable by name
const (
	VariantDefault    = "default"
	VariantSimplified = "simplified"
)

// ErrUnknownVariant is returned for a preset name that does not exist
var ErrUnknownVariant = errors.New("unknown config variant")

// Settings are the options every host shares
type Settings struct {
	Variant  string
	AssetDir string
	Debug    bool
	Seed     int64 // Zero picks a seed from the clock
}

// Defaults returns the settings used when nothing overrides them
func Defaults() Settings {
	return Settings{
		Variant:  VariantDefault,
		AssetDir: "assets",
	}
}

// Load reads envFile into the process environment if it exists and applies
// the MECHTIDE_* variables on top of the defaults. Variables already set in
// the environment win over the file.
func Load(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		} else {
			log.Printf("Loaded environment overrides from %s", envFile)
		}
	}
	return FromEnv()
}

// FromEnv applies the MECHTIDE_* variables on top of the defaults
func FromEnv() (Settings, error) {
	s := Defaults()

	if v := os.Getenv(EnvVariant); v != "" {
		s.Variant = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvAssets); v != "" {
		s.AssetDir = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", EnvDebug, err)
		}
		s.Debug = debug
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	return s, nil
}

// RegisterFlags binds the settings to flags whose defaults are the current values
func (s *Settings) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&s.Variant, "variant", s.Variant, "config preset: default or simplified")
	flags.StringVar(&s.AssetDir, "assets", s.AssetDir, "directory holding PNG sprites")
	flags.BoolVar(&s.Debug, "debug", s.Debug, "start with bounding boxes shown")
	flags.Int64Var(&s.Seed, "seed", s.Seed, "random seed, 0 picks one from the clock")
}

// Config returns the validated preset named by Variant
func (s Settings) Config() (game.Config, error) {
	var cfg game.Config
	switch s.Variant {
	case VariantDefault, "":
		cfg = game.DefaultConfig()
	case VariantSimplified:
		cfg = game.SimplifiedConfig()
	default:
		return game.Config{}, fmt.Errorf("%w: %q", ErrUnknownVariant, s.Variant)
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// RandomSource returns a source seeded with Seed, or with the clock when Seed is zero
func (s Settings) RandomSource() game.RandomSource {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.NewRandomSource(seed)
}

// NewGame builds a game from the settings, queueing a debug toggle when Debug is set
func (s Settings) NewGame() (*game.Game, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(cfg, s.RandomSource())
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if s.Debug {
		g.Input().PressToggleDebug()
	}
	return g, nil
}
