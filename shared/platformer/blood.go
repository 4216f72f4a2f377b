package platformer

import (
	"math"
	"math/rand"

	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

// Particle is one blood droplet.
type Particle struct {
	Rect    gamemath.Rect
	HSpeed  float64
	VSpeed  float64
	Gravity float64
	Variant int
}

// BloodBurst sprays droplets from the point of death for a fixed window of
// ticks. Droplets that reach a screen edge stick to it, so the burst never
// holds more than BloodPerTick*BloodWindow droplets.
type BloodBurst struct {
	Particles []*Particle

	rev      tuning.Revision
	cx, cy   float64
	age      int
	rng      *rand.Rand
	variants int
	w, h     float64
}

func NewBloodBurst(rev tuning.Revision, cx, cy float64, deps Deps) *BloodBurst {
	deps = deps.withDefaults()
	return &BloodBurst{
		rev:      rev,
		cx:       cx,
		cy:       cy,
		rng:      deps.Rand,
		variants: deps.BloodVariants,
		w:        deps.BloodW,
		h:        deps.BloodH,
	}
}

// Spawning reports whether the burst is still emitting.
func (b *BloodBurst) Spawning() bool {
	return b.age < b.rev.BloodWindow
}

// Update emits this tick's droplets, then moves all of them.
func (b *BloodBurst) Update() {
	if b.Spawning() {
		for i := 0; i < b.rev.BloodPerTick; i++ {
			b.Particles = append(b.Particles, b.spawn())
		}
	}
	b.age++

	width, height := float64(b.rev.ScreenWidth), float64(b.rev.ScreenHeight)
	for _, p := range b.Particles {
		p.step(width, height)
	}
}

func (b *BloodBurst) spawn() *Particle {
	speed := b.uniform(b.rev.BloodSpeedMin, b.rev.BloodSpeedMax)
	angle := b.uniform(0, 2*math.Pi)
	r := gamemath.NewRect(0, 0, b.w, b.h)
	r.SetCenter(b.cx, b.cy)
	return &Particle{
		Rect:    r,
		HSpeed:  math.Cos(angle) * speed,
		VSpeed:  math.Sin(angle) * speed,
		Gravity: b.uniform(b.rev.BloodGravityMin, b.rev.BloodGravityMax),
		Variant: b.rng.Intn(b.variants),
	}
}

func (b *BloodBurst) uniform(lo, hi float64) float64 {
	return lo + b.rng.Float64()*(hi-lo)
}

func (p *Particle) step(width, height float64) {
	p.VSpeed += p.Gravity
	if p.Rect.Left()+p.HSpeed < 0 {
		p.HSpeed = -p.Rect.Left()
		p.VSpeed = 0
		p.Gravity = 0
	} else if p.Rect.Right()+p.HSpeed > width {
		p.HSpeed = width - p.Rect.Right()
		p.VSpeed = 0
		p.Gravity = 0
	}
	if p.Rect.Bottom()+p.VSpeed > height {
		p.HSpeed = 0
		p.VSpeed = height - p.Rect.Bottom()
		p.Gravity = 0
	}
	p.Rect = p.Rect.Moved(p.HSpeed, p.VSpeed)
}
