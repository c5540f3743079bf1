package game

// Collides reports whether two axis-aligned rectangles overlap.
// Touching edges do not count as a hit.
func Collides(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Overlaps reports whether the collision boxes of two entities overlap
func Overlaps(a, b Bounded) bool {
	return Collides(a.Bounds(), b.Bounds())
}

// CollisionSystem resolves the hit rules between the player, its projectiles and the enemies
type CollisionSystem struct {
	game *Game
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(g *Game) *CollisionSystem {
	return &CollisionSystem{game: g}
}

// HandlePlayerCollision applies contact damage between the player and an enemy
func (c *CollisionSystem) HandlePlayerCollision(ctx *Context, enemy *Enemy) {
	g := c.game
	if !Overlaps(g.player, enemy) {
		return
	}

	enemy.Removable = true
	g.addExplosion(ctx, enemy)
	g.addParticles(ctx, enemy, contactParticleCount)

	if enemy.Kind == EnemyLuckyFish && !g.player.PowerUp {
		if g.player.EnterPowerUp(ctx) {
			g.stats.PowerUps++
		}
	} else if !g.scoreboard.GameOver {
		g.scoreboard.Score--
	}
}

// HandleProjectileCollisions applies every overlapping projectile to an enemy
func (c *CollisionSystem) HandleProjectileCollisions(ctx *Context, enemy *Enemy) {
	g := c.game
	for _, projectile := range g.player.Projectiles {
		if enemy.Lives <= 0 {
			return
		}
		// A projectile spent on an earlier enemy this tick still hits
		if !Overlaps(enemy, projectile) {
			continue
		}

		livesBefore := enemy.Lives
		enemy.Lives--
		projectile.Removable = true
		g.addParticles(ctx, enemy, 1)

		if enemy.Lives == 0 {
			c.destroyEnemy(ctx, enemy, livesBefore)
		}
	}
}

// destroyEnemy runs the death cascade of an enemy whose lives just reached zero
func (c *CollisionSystem) destroyEnemy(ctx *Context, enemy *Enemy, livesBefore int) {
	g := c.game
	enemy.Removable = true
	g.addExplosion(ctx, enemy)
	g.addParticles(ctx, enemy, livesBefore)
	g.stats.Destroyed[enemy.Kind]++

	if enemy.Kind == EnemyHiveWhale {
		for i := 0; i < droneCascadeCount; i++ {
			x := enemy.X + ctx.Rand.Float64()*enemy.Width
			y := enemy.Y + ctx.Rand.Float64()*enemy.Height*0.5
			g.world.AddEnemy(NewDrone(ctx, x, y))
			g.stats.Spawned[EnemyDrone]++
		}
	}

	sb := g.scoreboard
	if !sb.GameOver {
		sb.Score += enemy.Score
	}
	if sb.Score >= sb.WinningScore {
		sb.GameOver = true
	}
}
