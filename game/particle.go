package game

import "math"

const (
	particleSpriteSize = 50.0
	particleSheetCells = 3
	particleGravity    = 0.5
	particleMaxBounces = 2
)

// Particle is a gear thrown out of a damaged machine.
// X and Y are the centre of the sprite.
type Particle struct {
	X, Y   float64
	SpeedX float64
	SpeedY float64
	Size   float64

	Angle  float64
	VA     float64 // Angular velocity in radians per frame
	FrameX int
	FrameY int

	Bounced        int
	BounceBoundary float64 // Distance above the bottom of the field
	Removable      bool
}

// NewParticle creates a gear at the given centre with random spin and launch velocity
func NewParticle(ctx *Context, x, y float64) *Particle {
	p := &Particle{
		X:      x,
		Y:      y,
		FrameX: ctx.intn(particleSheetCells),
		FrameY: ctx.intn(particleSheetCells),
	}
	modifier := math.Round((ctx.Rand.Float64()*0.5+0.5)*10) / 10
	p.Size = particleSpriteSize * modifier
	p.SpeedX = ctx.between(-3, 3)
	p.SpeedY = ctx.Rand.Float64() * -15
	p.VA = ctx.between(-0.1, 0.1)
	p.BounceBoundary = ctx.between(60, 160)
	return p
}

// Update applies spin, gravity and the world scroll, and bounces off the floor twice
func (p *Particle) Update(ctx *Context, deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	steps := ctx.Steps(deltaTime)
	height := ctx.Config.FieldHeight

	p.Angle += p.VA * steps
	p.SpeedY += particleGravity * steps
	p.X += (p.SpeedX - ctx.Speed) * steps
	p.Y += p.SpeedY * steps

	if p.Y > height+p.Size || p.X < -p.Size {
		p.Removable = true
	}
	if p.Y > height-p.BounceBoundary && p.Bounced < particleMaxBounces {
		p.Bounced++
		p.SpeedY *= -0.5
	}
}
