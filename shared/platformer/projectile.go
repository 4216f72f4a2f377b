package platformer

import (
	"github.com/GrapeSkin2191/iwanna/assets/animations"
	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

// Projectile is one player bullet.
type Projectile struct {
	Rect   gamemath.Rect
	HSpeed float64
	Age    int
	Anim   *animations.Animation
}

// Projectiles is the bounded pool of live bullets.
type Projectiles struct {
	live   []*Projectile
	limit  int
	speed  float64
	ttl    int
	w, h   float64
	frames int
	ticks  int
}

func NewProjectiles(rev tuning.Revision, w, h float64, frames int) *Projectiles {
	return &Projectiles{
		limit:  rev.ProjectileLimit,
		speed:  rev.ProjectileSpeed,
		ttl:    rev.ProjectileTTL,
		w:      w,
		h:      h,
		frames: frames,
		ticks:  rev.ProjectileFrameTicks,
	}
}

// Spawn adds a bullet centred on (cx, cy) travelling in dir (-1 or 1). A
// full pool ignores the request.
func (ps *Projectiles) Spawn(cx, cy, dir float64) bool {
	if len(ps.live) >= ps.limit {
		return false
	}
	r := gamemath.NewRect(0, 0, ps.w, ps.h)
	r.SetCenter(cx, cy)
	ps.live = append(ps.live, &Projectile{
		Rect:   r,
		HSpeed: dir * ps.speed,
		Anim:   animations.NewAnimation(tuning.Bullet, ps.frames, ps.ticks),
	})
	return true
}

// Update moves every bullet and drops the ones whose lifetime ran out or
// whose next step would leave [0, screenW].
func (ps *Projectiles) Update(screenW float64) {
	kept := ps.live[:0]
	for _, b := range ps.live {
		b.Age++
		next := b.Rect.Moved(b.HSpeed, 0)
		if b.Age > ps.ttl || next.Left() < 0 || next.Right() > screenW {
			continue
		}
		b.Rect = next
		b.Anim.Update()
		kept = append(kept, b)
	}
	for i := len(kept); i < len(ps.live); i++ {
		ps.live[i] = nil
	}
	ps.live = kept
}

// Len is the number of live bullets.
func (ps *Projectiles) Len() int {
	return len(ps.live)
}

// Each calls fn for every live bullet in spawn order.
func (ps *Projectiles) Each(fn func(*Projectile)) {
	for _, b := range ps.live {
		fn(b)
	}
}
