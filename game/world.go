package game

// World owns the entity collections outside the player.
// Entities are only ever flagged during an update pass; Prune drops them afterwards.
type World struct {
	Enemies    []*Enemy
	Particles  []*Particle
	Explosions []*Explosion
}

// NewWorld creates a world with preallocated collections
func NewWorld() *World {
	return &World{
		Enemies:    make([]*Enemy, 0, 32),
		Particles:  make([]*Particle, 0, 128),
		Explosions: make([]*Explosion, 0, 16),
	}
}

// AddEnemy registers an enemy
func (w *World) AddEnemy(enemy *Enemy) {
	w.Enemies = append(w.Enemies, enemy)
}

// AddParticle registers a particle
func (w *World) AddParticle(particle *Particle) {
	w.Particles = append(w.Particles, particle)
}

// AddExplosion registers an explosion
func (w *World) AddExplosion(explosion *Explosion) {
	w.Explosions = append(w.Explosions, explosion)
}

// UpdateParticles steps every particle and drops the finished ones
func (w *World) UpdateParticles(ctx *Context, deltaTime float64) {
	for _, particle := range w.Particles {
		particle.Update(ctx, deltaTime)
	}
	w.Particles = compact(w.Particles, func(p *Particle) bool { return p.Removable })
}

// UpdateExplosions steps every explosion and drops the finished ones
func (w *World) UpdateExplosions(ctx *Context, deltaTime float64) {
	for _, explosion := range w.Explosions {
		explosion.Update(ctx, deltaTime)
	}
	w.Explosions = compact(w.Explosions, func(e *Explosion) bool { return e.Removable })
}

// PruneEnemies drops dead enemies and those that left the field
func (w *World) PruneEnemies() {
	w.Enemies = compact(w.Enemies, func(e *Enemy) bool { return e.Removable || e.OffScreen() })
}

// compact removes flagged items in place, keeping order
func compact[T any](items []*T, removable func(*T) bool) []*T {
	kept := items[:0]
	for _, item := range items {
		if !removable(item) {
			kept = append(kept, item)
		}
	}
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept
}
