package game

import "fmt"

const (
	contactParticleCount = 5
	droneCascadeCount    = 5
)

// Stats counts what happened over a game
type Stats struct {
	Spawned    [EnemyKindCount]int
	Destroyed  [EnemyKindCount]int
	ShotsFired int
	PowerUps   int
	Ticks      int
}

// Game represents the main game state
type Game struct {
	config Config
	rand   RandomSource

	background      *Background
	player          *Player
	world           *World
	scoreboard      *Scoreboard
	spawner         *SpawnScheduler
	collisionSystem *CollisionSystem
	input           *InputState
	ctx             Context

	debug bool
	stats Stats
}

// NewGame creates a new game instance, rejecting an invalid config
func NewGame(config Config, rng RandomSource) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfig)
	}

	g := &Game{
		config: config,
		rand:   rng,
		input:  &InputState{},
	}
	g.reset()
	return g, nil
}

// reset rebuilds every subsystem from the config, keeping input and random source
func (g *Game) reset() {
	g.background = NewBackground()
	g.player = NewPlayer()
	g.world = NewWorld()
	g.scoreboard = NewScoreboard(g.config)
	g.spawner = NewSpawnScheduler(g.config.EnemyIntervalMs)
	g.collisionSystem = NewCollisionSystem(g)
	g.stats = Stats{}
	g.ctx = Context{
		Config: &g.config,
		Rand:   g.rand,
		Speed:  g.config.ScrollSpeed,
		State:  g.scoreboard,
	}
}

// Reset starts a new game with the same configuration. The debug flag survives.
func (g *Game) Reset() {
	g.reset()
	g.input.Release()
	g.input.drain()
}

// Input returns the input state the host fills in before each tick
func (g *Game) Input() *InputState {
	return g.input
}

// Config returns the configuration the game was built with
func (g *Game) Config() Config {
	return g.config
}

// Player returns the player
func (g *Game) Player() *Player {
	return g.player
}

// World returns the entity collections
func (g *Game) World() *World {
	return g.world
}

// Scoreboard returns time, ammo and score
func (g *Game) Scoreboard() *Scoreboard {
	return g.scoreboard
}

// GameOver reports whether the game has ended
func (g *Game) GameOver() bool {
	return g.scoreboard.GameOver
}

// Outcome reports whether the game was won or lost
func (g *Game) Outcome() Outcome {
	return g.scoreboard.Outcome()
}

// Debug reports whether bounding boxes should be drawn
func (g *Game) Debug() bool {
	return g.debug
}

// Stats returns the counters collected so far
func (g *Game) Stats() Stats {
	return g.stats
}

// Tick advances the game by deltaTime milliseconds
func (g *Game) Tick(deltaTime float64) {
	// Negative and NaN deltas count as no time passing
	if !(deltaTime > 0) {
		deltaTime = 0
	}
	ctx := &g.ctx
	sb := g.scoreboard
	g.stats.Ticks++

	fire, toggles := g.input.drain()
	if toggles%2 == 1 {
		g.debug = !g.debug
	}

	// Game clock
	sb.AdvanceTime(deltaTime)

	g.background.Update(ctx, deltaTime)

	// Player
	var held *InputState
	if !sb.GameOver {
		held = g.input
		for i := 0; i < fire; i++ {
			g.stats.ShotsFired += g.player.FireForward(ctx)
		}
	}
	g.player.Update(ctx, held, deltaTime)

	sb.RechargeAmmo(deltaTime)

	g.world.UpdateParticles(ctx, deltaTime)
	g.world.UpdateExplosions(ctx, deltaTime)

	// Enemies spawned during this pass are not visited until the next tick
	enemies := g.world.Enemies
	for _, enemy := range enemies {
		enemy.Update(ctx, deltaTime)
		g.collisionSystem.HandlePlayerCollision(ctx, enemy)
		g.collisionSystem.HandleProjectileCollisions(ctx, enemy)
	}
	g.world.PruneEnemies()

	if g.spawner.Update(deltaTime, sb.GameOver) {
		enemy := g.spawner.Spawn(ctx)
		g.world.AddEnemy(enemy)
		g.stats.Spawned[enemy.Kind]++
	}
}

// addExplosion places a random explosion on the centre of an enemy
func (g *Game) addExplosion(ctx *Context, enemy *Enemy) {
	cx, cy := enemy.Center()
	g.world.AddExplosion(NewExplosion(PickExplosionKind(ctx.Rand.Float64()), cx, cy))
}

// addParticles throws count gears out of the centre of an enemy
func (g *Game) addParticles(ctx *Context, enemy *Enemy, count int) {
	cx, cy := enemy.Center()
	for i := 0; i < count; i++ {
		g.world.AddParticle(NewParticle(ctx, cx, cy))
	}
}
