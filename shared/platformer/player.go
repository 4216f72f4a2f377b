package platformer

import (
	"github.com/GrapeSkin2191/iwanna/assets/animations"
	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

// Collisions records which sides of the player hit something this tick.
type Collisions struct {
	Up, Down, Left, Right bool
}

// Player is the single controllable character of a room.
type Player struct {
	Rect       gamemath.Rect
	HSpeed     float64
	VSpeed     float64
	Collisions Collisions
	AirTime    int
	HasDJump   bool
	Dead       bool
	FacingLeft bool

	Anim    *animations.Animation
	Bullets *Projectiles
	Blood   *BloodBurst // nil until the player dies

	rev        tuning.Revision
	deps       Deps
	deathTicks int
}

// NewPlayer places a player with its top-left corner at (x, y).
func NewPlayer(rev tuning.Revision, x, y float64, deps Deps) *Player {
	deps = deps.withDefaults()
	p := &Player{
		Rect: gamemath.NewRect(x, y, float64(deps.Mask.W), float64(deps.Mask.H)),
		rev:  rev,
		deps: deps,
	}
	p.Anim = animations.NewAnimation(tuning.Idle, deps.Clips[tuning.Idle], rev.PlayerFrameTicks)
	p.Bullets = NewProjectiles(rev, deps.BulletW, deps.BulletH, deps.BulletFrames)
	return p
}

// Revision returns the tuning the player was built with.
func (p *Player) Revision() tuning.Revision {
	return p.rev
}

// Mask returns the player's collision mask.
func (p *Player) Mask() gamemath.Mask {
	return p.deps.Mask
}

// Update advances the player by one tick. The order of the steps is fixed:
// horizontal resolution, vertical resolution, hazard test, then input for
// the next tick's motion.
func (p *Player) Update(ctrl Controller) {
	if p.Dead {
		p.updateDead()
		return
	}

	p.Collisions = Collisions{}
	p.moveX()
	p.moveY()

	if p.deps.Hazards.Hits(p.deps.Mask, p.Rect.X, p.Rect.Y) {
		p.die()
	}

	p.sampleInput(ctrl)

	if p.Collisions.Down {
		p.AirTime = 0
	} else {
		p.AirTime++
	}

	p.VSpeed += p.rev.Gravity
	p.VSpeed = gamemath.ClampSpeed(p.VSpeed, p.rev.MaxVSpeed)

	if p.AirTime > p.rev.CoyoteTicks {
		if p.VSpeed < -p.rev.AnimEpsilon {
			p.setClip(tuning.Jump)
		} else if p.VSpeed > p.rev.AnimEpsilon {
			p.setClip(tuning.Fall)
		}
	}

	p.Bullets.Update(float64(p.rev.ScreenWidth))
	p.Anim.Update()
}

func (p *Player) sampleInput(ctrl Controller) {
	right, left := false, false
	if ctrl != nil {
		right, left = ctrl.MoveRight(), ctrl.MoveLeft()
	}

	switch {
	case right:
		p.HSpeed = p.rev.MaxHSpeed
		p.FacingLeft = false
		p.setClip(tuning.Running)
	case left:
		p.HSpeed = -p.rev.MaxHSpeed
		p.FacingLeft = true
		p.setClip(tuning.Running)
	default:
		p.HSpeed = 0
		p.setClip(tuning.Idle)
	}
}

func (p *Player) setClip(clip tuning.StateID) {
	p.Anim.Set(clip, p.deps.Clips[clip])
}

// Facing returns -1 when the player faces left and 1 otherwise.
func (p *Player) Facing() float64 {
	if p.FacingLeft {
		return -1
	}
	return 1
}
