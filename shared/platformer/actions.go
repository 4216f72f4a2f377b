package platformer

import "github.com/GrapeSkin2191/iwanna/shared/tuning"

// Jump starts a ground jump when the player counts as grounded, otherwise a
// double jump if one is available.
func (p *Player) Jump() {
	if p.Dead {
		return
	}
	if p.canGroundJump() {
		p.VSpeed = -p.rev.JumpSpeed
		p.HasDJump = true
		p.deps.Audio.PlaySFX(tuning.SoundJump)
		return
	}
	if p.HasDJump {
		p.VSpeed = -p.rev.DJumpSpeed
		if !p.rev.DoubleJumpUnlimited {
			p.HasDJump = false
		}
		p.deps.Audio.PlaySFX(tuning.SoundDJump)
	}
}

func (p *Player) canGroundJump() bool {
	if p.rev.GroundRule == tuning.GroundScreenBottom {
		return p.Rect.Bottom() >= float64(p.rev.ScreenHeight)
	}
	return p.AirTime <= p.rev.CoyoteTicks
}

// ReleaseJump cuts an upward jump short when the jump key is let go.
func (p *Player) ReleaseJump() {
	if p.Dead {
		return
	}
	if p.rev.VJumpAlways || p.VSpeed < -p.rev.VJumpThreshold {
		p.VSpeed *= p.rev.VJumpFactor
	}
}

// Shoot fires a projectile from the player's centre in the facing
// direction. It reports whether the pool had room.
func (p *Player) Shoot() bool {
	if p.Dead {
		return false
	}
	cx, cy := p.Rect.Center()
	if !p.Bullets.Spawn(cx, cy, p.Facing()) {
		return false
	}
	p.deps.Audio.PlaySFX(tuning.SoundShoot)
	return true
}

// Kill is the manual death trigger.
func (p *Player) Kill() {
	p.die()
}

func (p *Player) die() {
	if p.Dead {
		return
	}
	p.Dead = true
	p.deathTicks = 0
	cx, cy := p.Rect.Center()
	p.Blood = NewBloodBurst(p.rev, cx, cy, p.deps)
	p.deps.Audio.PlayDeathMusic()
}

func (p *Player) updateDead() {
	if p.Blood != nil {
		p.Blood.Update()
	}
	p.Bullets.Update(float64(p.rev.ScreenWidth))
	p.deathTicks++
}

// DeathTicks is the number of updates since the player died.
func (p *Player) DeathTicks() int {
	return p.deathTicks
}

// GameOverVisible reports whether the game-over banner should be drawn.
func (p *Player) GameOverVisible() bool {
	return p.Dead && p.deathTicks > p.rev.GameOverDelay
}
