package game

// Enemy is any of the scrolling sea creatures, distinguished by Kind
type Enemy struct {
	Kind EnemyKind
	Rect

	SpeedX    float64
	Lives     int
	Score     int
	Removable bool

	FrameY int
	anim   animator
}

// NewEnemy creates an enemy of the given kind entering from the right edge
// at a random height that keeps it clear of the bottom edge.
func NewEnemy(ctx *Context, kind EnemyKind) *Enemy {
	cfg := GetEnemyTypeConfig(kind)
	y := ctx.Rand.Float64() * (ctx.Config.FieldHeight*0.95 - cfg.Height)
	return newEnemyAt(ctx, cfg, ctx.Config.FieldWidth, y)
}

// NewDrone creates a drone at an explicit position
func NewDrone(ctx *Context, x, y float64) *Enemy {
	return newEnemyAt(ctx, GetEnemyTypeConfig(EnemyDrone), x, y)
}

func newEnemyAt(ctx *Context, cfg EnemyTypeConfig, x, y float64) *Enemy {
	return &Enemy{
		Kind:   cfg.Kind,
		Rect:   Rect{X: x, Y: y, Width: cfg.Width, Height: cfg.Height},
		SpeedX: -(cfg.SpeedBase + ctx.Rand.Float64()*cfg.SpeedRange),
		Lives:  cfg.Lives,
		Score:  cfg.Score,
		FrameY: ctx.intn(cfg.Rows),
		anim:   animator{MaxFrame: enemyMaxFrame},
	}
}

// Bounds returns the collision box
func (e *Enemy) Bounds() Rect {
	return e.Rect
}

// Frame returns the current sprite column
func (e *Enemy) Frame() int {
	return e.anim.Frame
}

// Update moves the enemy left with the world and advances its animation
func (e *Enemy) Update(ctx *Context, deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	e.X += (e.SpeedX - ctx.Speed) * ctx.Steps(deltaTime)
	if e.OffScreen() {
		e.Removable = true
	}
	e.anim.advance(deltaTime, ctx.Config.FrameDurationMs)
}

// OffScreen reports whether the enemy has scrolled fully past the left edge
func (e *Enemy) OffScreen() bool {
	return e.X+e.Width < 0
}
