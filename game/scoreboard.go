package game

import "math"

// Outcome is the derived result of a game
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// Scoreboard tracks game time, ammo and score and decides when the game is over
type Scoreboard struct {
	GameTime  float64
	TimeLimit float64

	Ammo      float64
	MaxAmmo   float64
	ammoTimer float64
	ammoEvery float64

	Score        int
	WinningScore int
	GameOver     bool
}

// NewScoreboard creates a scoreboard from the config
func NewScoreboard(cfg Config) *Scoreboard {
	return &Scoreboard{
		TimeLimit:    cfg.TimeLimitMs,
		Ammo:         cfg.StartAmmo,
		MaxAmmo:      cfg.MaxAmmo,
		ammoEvery:    cfg.AmmoIntervalMs,
		WinningScore: cfg.WinningScore,
	}
}

// AdvanceTime adds to the game time until the game is over, ending it at the limit
func (s *Scoreboard) AdvanceTime(deltaTime float64) {
	if !s.GameOver {
		s.GameTime += deltaTime
	}
	if s.GameTime >= s.TimeLimit {
		s.GameOver = true
	}
}

// RechargeAmmo gives back one round per elapsed interval while the game runs
func (s *Scoreboard) RechargeAmmo(deltaTime float64) {
	s.ammoTimer += deltaTime
	if s.ammoTimer > s.ammoEvery && !s.GameOver {
		s.addAmmo(1)
		s.ammoTimer = 0
	}
}

func (s *Scoreboard) addAmmo(amount float64) {
	s.Ammo = math.Min(s.Ammo+amount, s.MaxAmmo)
	if s.Ammo < 0 {
		s.Ammo = 0
	}
}

// Rounds is the whole number of rounds available
func (s *Scoreboard) Rounds() int {
	return int(math.Floor(s.Ammo))
}

// RemainingMs is the time left before the limit, zero once it has passed
func (s *Scoreboard) RemainingMs() float64 {
	return math.Max(0, s.TimeLimit-s.GameTime)
}

// Outcome derives win or loss from the final score
func (s *Scoreboard) Outcome() Outcome {
	if !s.GameOver {
		return OutcomePlaying
	}
	if s.Score >= s.WinningScore {
		return OutcomeWon
	}
	return OutcomeLost
}
