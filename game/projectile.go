package game

const (
	projectileWidth  = 10.0
	projectileHeight = 3.0
	projectileSpeed  = 5.0

	// Projectiles are dropped once they pass this fraction of the field width
	projectileRange = 0.9
)

// Projectile is a player shot travelling right
type Projectile struct {
	Rect
	Speed     float64
	Removable bool
}

// NewProjectile creates a projectile at the given position
func NewProjectile(x, y float64) *Projectile {
	return &Projectile{
		Rect:  Rect{X: x, Y: y, Width: projectileWidth, Height: projectileHeight},
		Speed: projectileSpeed,
	}
}

// Bounds returns the collision box
func (p *Projectile) Bounds() Rect {
	return p.Rect
}

// Update moves the projectile and marks it once it leaves the playable range
func (p *Projectile) Update(ctx *Context, deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	p.X += p.Speed * ctx.Steps(deltaTime)
	if p.X > ctx.Config.FieldWidth*projectileRange {
		p.Removable = true
	}
}
