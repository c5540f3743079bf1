package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"mechtide/game"
	"mechtide/internal/settings"
)

const aimDeadZone = 6.0

// autopilot flies the player towards the nearest enemy ahead and fires at a fixed cadence
type autopilot struct {
	fireEvery int
	ticks     int
}

// steer fills in the input for the next tick
func (a *autopilot) steer(g *game.Game) {
	in := g.Input()
	in.Release()

	a.ticks++
	if a.fireEvery > 0 && a.ticks%a.fireEvery == 0 {
		in.PressFire()
	}

	target := nearestEnemyAhead(g)
	if target == nil {
		return
	}
	_, py := g.Player().Center()
	_, ty := target.Center()
	switch {
	case ty < py-aimDeadZone:
		in.MoveUp = true
	case ty > py+aimDeadZone:
		in.MoveDown = true
	}
}

func nearestEnemyAhead(g *game.Game) *game.Enemy {
	player := g.Player()
	var best *game.Enemy
	for _, e := range g.World().Enemies {
		if e.X+e.Width < player.X {
			continue
		}
		if best == nil || e.X < best.X {
			best = e
		}
	}
	return best
}

// timeline yields the frame timestamp in milliseconds for each tick, like a
// browser animation frame callback
type timeline func() float64

func fixedFrames(ms float64) timeline {
	now := 0.0
	return func() float64 {
		now += ms
		return now
	}
}

func jitteredFrames(rng game.RandomSource, maxMs float64) timeline {
	now := 0.0
	return func() float64 {
		now += rng.Float64() * maxMs
		return now
	}
}

// result summarises a finished game
type result struct {
	Outcome  game.Outcome
	Score    int
	GameTime float64
	Ticks    int
	Stats    game.Stats
}

func (r result) String() string {
	var destroyed []string
	for k := game.EnemyKind(0); k < game.EnemyKindCount; k++ {
		if r.Stats.Destroyed[k] > 0 {
			destroyed = append(destroyed, fmt.Sprintf("%s=%d", k, r.Stats.Destroyed[k]))
		}
	}
	return fmt.Sprintf("%s score=%d time=%.1fs ticks=%d shots=%d powerups=%d destroyed[%s]",
		r.Outcome, r.Score, r.GameTime/1000, r.Ticks, r.Stats.ShotsFired, r.Stats.PowerUps, strings.Join(destroyed, " "))
}

// play runs g until it is over or maxTicks have passed. The clock is reset
// first so the opening tick has no elapsed time.
func play(g *game.Game, pilot *autopilot, clock *game.Clock, next timeline, maxTicks int) result {
	clock.Reset()
	ticks := 0
	for ; ticks < maxTicks && !g.GameOver(); ticks++ {
		pilot.steer(g)
		g.Tick(clock.Delta(next()))
	}
	sb := g.Scoreboard()
	return result{
		Outcome:  g.Outcome(),
		Score:    sb.Score,
		GameTime: sb.GameTime,
		Ticks:    ticks,
		Stats:    g.Stats(),
	}
}

func main() {
	opts, err := settings.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	opts.RegisterFlags(flag.CommandLine)
	step := flag.Float64("step", 1000.0/60.0, "milliseconds per tick, 0 draws a random step up to -max-step")
	maxStep := flag.Float64("max-step", 50, "upper bound of the random step")
	games := flag.Int("games", 1, "number of games to play")
	fireEvery := flag.Int("fire-every", 10, "press fire every N ticks, 0 never fires")
	maxTicks := flag.Int("max-ticks", 1_000_000, "stop a game after this many ticks")
	flag.Parse()

	g, err := opts.NewGame()
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	var clock game.Clock
	next := fixedFrames(*step)
	if *step <= 0 {
		next = jitteredFrames(opts.RandomSource(), *maxStep)
	}

	wins := 0
	for i := 0; i < *games; i++ {
		if i > 0 {
			g.Reset()
		}
		r := play(g, &autopilot{fireEvery: *fireEvery}, &clock, next, *maxTicks)
		if r.Outcome == game.OutcomeWon {
			wins++
		}
		log.Printf("Game %d: %s", i+1, r)
	}
	log.Printf("Won %d of %d games", wins, *games)
}
