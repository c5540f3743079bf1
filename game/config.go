package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config holds game configuration constants.
// Times are in milliseconds, speeds in pixels per reference frame.
type Config struct {
	// FieldWidth is the width of the playfield in pixels
	FieldWidth float64

	// FieldHeight is the height of the playfield in pixels
	FieldHeight float64

	// FrameDurationMs is the reference frame that per-frame speeds are defined against
	FrameDurationMs float64

	// ScrollSpeed is the world scroll speed in pixels per frame
	ScrollSpeed float64

	// StartAmmo is the ammo count at the start of a game
	StartAmmo float64

	// MaxAmmo caps the ammo count
	MaxAmmo float64

	// AmmoIntervalMs is the time between passive ammo recharges
	AmmoIntervalMs float64

	// EnemyIntervalMs is the time between scheduled enemy spawns
	EnemyIntervalMs float64

	// TimeLimitMs ends the game when the elapsed game time reaches it
	TimeLimitMs float64

	// WinningScore ends the game with a win once the score reaches it
	WinningScore int

	// PowerUpDurationMs is how long a power-up stays active
	PowerUpDurationMs float64

	// PowerUpAmmoPerFrame is the ammo regenerated per frame while powered up
	PowerUpAmmoPerFrame float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		FieldWidth:          1200,
		FieldHeight:         500,
		FrameDurationMs:     1000.0 / 60.0,
		ScrollSpeed:         1,
		StartAmmo:           20,
		MaxAmmo:             30,
		AmmoIntervalMs:      2000,
		EnemyIntervalMs:     1000,
		TimeLimitMs:         60000,
		WinningScore:        300,
		PowerUpDurationMs:   10000,
		PowerUpAmmoPerFrame: 0.1,
		ScreenWidth:         1200,
		ScreenHeight:        500,
	}
}

// SimplifiedConfig returns the wider, more forgiving layout
func SimplifiedConfig() Config {
	c := DefaultConfig()
	c.FieldWidth = 1500
	c.ScreenWidth = 1500
	c.MaxAmmo = 50
	c.AmmoIntervalMs = 1000
	return c
}

// Validate rejects non-positive dimensions, intervals and ammo bounds
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"field width", c.FieldWidth},
		{"field height", c.FieldHeight},
		{"frame duration", c.FrameDurationMs},
		{"max ammo", c.MaxAmmo},
		{"ammo interval", c.AmmoIntervalMs},
		{"enemy interval", c.EnemyIntervalMs},
		{"time limit", c.TimeLimitMs},
		{"power-up duration", c.PowerUpDurationMs},
		{"winning score", float64(c.WinningScore)},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, check.name, check.value)
		}
	}
	if c.ScrollSpeed < 0 {
		return fmt.Errorf("%w: scroll speed must not be negative, got %v", ErrInvalidConfig, c.ScrollSpeed)
	}
	if c.StartAmmo < 0 || c.StartAmmo > c.MaxAmmo {
		return fmt.Errorf("%w: start ammo %v outside [0, %v]", ErrInvalidConfig, c.StartAmmo, c.MaxAmmo)
	}
	return nil
}

// Steps converts a millisecond delta into reference frames
func (c Config) Steps(deltaTime float64) float64 {
	return deltaTime / c.FrameDurationMs
}
