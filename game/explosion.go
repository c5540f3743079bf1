package game

// ExplosionKind selects the explosion sprite sheet
type ExplosionKind int

const (
	ExplosionSmoke ExplosionKind = iota
	ExplosionFire
)

const (
	explosionSize     = 200.0
	explosionMaxFrame = 8
	explosionFPS      = 25.0
)

// Sprite returns the sheet used for this kind
func (k ExplosionKind) Sprite() SpriteID {
	if k == ExplosionFire {
		return SpriteFireExplosion
	}
	return SpriteSmokeExplosion
}

// PickExplosionKind maps a uniform value in [0, 1) onto an explosion kind
func PickExplosionKind(r float64) ExplosionKind {
	if r < 0.5 {
		return ExplosionSmoke
	}
	return ExplosionFire
}

// Explosion is a one-shot animation left behind by a dead enemy
type Explosion struct {
	Kind ExplosionKind
	Rect

	FrameX    int
	Removable bool

	timer    float64
	interval float64
}

// NewExplosion creates an explosion centred on (cx, cy)
func NewExplosion(kind ExplosionKind, cx, cy float64) *Explosion {
	return &Explosion{
		Kind: kind,
		Rect: Rect{
			X:      cx - explosionSize*0.5,
			Y:      cy - explosionSize*0.5,
			Width:  explosionSize,
			Height: explosionSize,
		},
		interval: 1000 / explosionFPS,
	}
}

// Update drifts with the world and advances one frame per elapsed interval
func (e *Explosion) Update(ctx *Context, deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	e.X -= ctx.Speed * ctx.Steps(deltaTime)
	e.timer += deltaTime
	if e.timer > e.interval {
		e.FrameX++
		e.timer = 0
	}
	if e.FrameX > explosionMaxFrame {
		e.Removable = true
	}
}
