package game

const (
	playerStartX   = 20.0
	playerStartY   = 100.0
	playerWidth    = 120.0
	playerHeight   = 190.0
	playerMaxSpeed = 3.0
	playerMaxFrame = 37

	// Fire offsets from the player's top-left corner
	noseOffsetX   = 80.0
	noseOffsetY   = 30.0
	bottomOffsetY = 175.0
)

// Player is the submarine controlled by the user
type Player struct {
	Rect
	SpeedY float64

	PowerUp      bool
	PowerUpTimer float64

	// Projectiles in fire order
	Projectiles []*Projectile

	anim animator
}

// NewPlayer creates the player at its start position
func NewPlayer() *Player {
	return &Player{
		Rect:        Rect{X: playerStartX, Y: playerStartY, Width: playerWidth, Height: playerHeight},
		Projectiles: make([]*Projectile, 0, 32),
		anim:        animator{MaxFrame: playerMaxFrame},
	}
}

// Bounds returns the collision box
func (p *Player) Bounds() Rect {
	return p.Rect
}

// Frame returns the current sprite column
func (p *Player) Frame() int {
	return p.anim.Frame
}

// FrameRow returns the sprite row, the second row while powered up
func (p *Player) FrameRow() int {
	if p.PowerUp {
		return 1
	}
	return 0
}

// FireForward fires from the nose, plus a free bottom shot while powered up.
// With less than one round left nothing fires, not even the bottom shot.
func (p *Player) FireForward(ctx *Context) int {
	sb := ctx.State
	if sb.Ammo < 1 {
		return 0
	}
	p.Projectiles = append(p.Projectiles, NewProjectile(p.X+noseOffsetX, p.Y+noseOffsetY))
	sb.Ammo--
	// The bottom shot rides on the nose shot and needs a round left over
	if !p.PowerUp || sb.Ammo <= 0 {
		return 1
	}
	p.Projectiles = append(p.Projectiles, NewProjectile(p.X+noseOffsetX, p.Y+bottomOffsetY))
	return 2
}

// EnterPowerUp activates the power-up and refills ammo. It needs ammo to be non-empty.
func (p *Player) EnterPowerUp(ctx *Context) bool {
	sb := ctx.State
	if sb.Ammo <= 0 {
		return false
	}
	p.PowerUp = true
	p.PowerUpTimer = 0
	if sb.Ammo < sb.MaxAmmo {
		sb.Ammo = sb.MaxAmmo
	}
	return true
}

// Update moves the player, maintains its projectiles and runs the power-up timer
func (p *Player) Update(ctx *Context, input *InputState, deltaTime float64) {
	// Hits from the previous tick are dropped even when no time passes
	p.Projectiles = compact(p.Projectiles, func(pr *Projectile) bool { return pr.Removable })
	if deltaTime <= 0 {
		return
	}
	steps := ctx.Steps(deltaTime)

	switch {
	case input != nil && input.MoveUp:
		p.SpeedY = -playerMaxSpeed
	case input != nil && input.MoveDown:
		p.SpeedY = playerMaxSpeed
	default:
		p.SpeedY = 0
	}
	p.Y += p.SpeedY * steps
	p.clamp(ctx.Config.FieldHeight)

	p.anim.advance(deltaTime, ctx.Config.FrameDurationMs)

	for _, projectile := range p.Projectiles {
		projectile.Update(ctx, deltaTime)
	}
	p.Projectiles = compact(p.Projectiles, func(pr *Projectile) bool { return pr.Removable })

	if p.PowerUp {
		p.PowerUpTimer += deltaTime
		ctx.State.addAmmo(ctx.Config.PowerUpAmmoPerFrame * steps)
		if p.PowerUpTimer > ctx.Config.PowerUpDurationMs {
			p.PowerUpTimer = 0
			p.PowerUp = false
		}
	}
}

// clamp keeps at least half of the sprite inside the field vertically
func (p *Player) clamp(fieldHeight float64) {
	if p.Y > fieldHeight-p.Height*0.5 {
		p.Y = fieldHeight - p.Height*0.5
	} else if p.Y < -p.Height*0.5 {
		p.Y = -p.Height * 0.5
	}
}
