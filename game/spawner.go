package game

// SpawnScheduler releases one enemy per elapsed interval
type SpawnScheduler struct {
	timer    float64
	interval float64
}

// NewSpawnScheduler creates a scheduler firing every interval milliseconds
func NewSpawnScheduler(interval float64) *SpawnScheduler {
	return &SpawnScheduler{interval: interval}
}

// Update accumulates time and reports whether an enemy is due.
// While suppressed the timer keeps running but nothing is released.
func (s *SpawnScheduler) Update(deltaTime float64, suppressed bool) bool {
	s.timer += deltaTime
	if s.timer > s.interval && !suppressed {
		s.timer = 0
		return true
	}
	return false
}

// Spawn creates an enemy of a weighted random kind
func (s *SpawnScheduler) Spawn(ctx *Context) *Enemy {
	return NewEnemy(ctx, PickEnemyKind(ctx.Rand.Float64()))
}
