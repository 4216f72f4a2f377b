package platformer

import (
	"testing"

	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

var (
	_ TileQuerier  = (*leveldata.Level)(nil)
	_ HazardTester = (*HazardField)(nil)
)

func TestGroundJump(t *testing.T) {
	rev := tuning.Tilemap()
	p, audio := newTestPlayer(t, rev, 40, 43, room(floorRow(2, 0, 3)...))

	p.Jump()
	if p.VSpeed != -rev.JumpSpeed {
		t.Fatalf("vspeed = %v, want %v", p.VSpeed, -rev.JumpSpeed)
	}
	if !p.HasDJump {
		t.Fatalf("ground jump did not grant a double jump")
	}
	if n := audio.count(tuning.SoundJump); n != 1 || len(audio.sfx) != 1 {
		t.Fatalf("cues = %v, want one ground jump cue", audio.sfx)
	}
}

func TestJumpForgivenessWindow(t *testing.T) {
	rev := tuning.Tilemap()

	tests := []struct {
		airTime int
		want    tuning.SoundID
	}{
		{0, tuning.SoundJump},
		{1, tuning.SoundJump},
		{2, tuning.SoundJump},
		{3, tuning.SoundDJump},
	}
	for _, tt := range tests {
		p, audio := newTestPlayer(t, rev, 100, 100, nil)
		p.AirTime = tt.airTime
		p.HasDJump = true
		p.Jump()
		if len(audio.sfx) != 1 || audio.sfx[0] != tt.want {
			t.Fatalf("air time %d: cues = %v, want %v", tt.airTime, audio.sfx, tt.want)
		}
	}
}

func TestDoubleJump(t *testing.T) {
	tests := []struct {
		name      string
		unlimited bool
		wantDJump int
	}{
		{"unlimited", true, 3},
		{"once per grounding", false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev := tuning.Tilemap()
			rev.DoubleJumpUnlimited = tt.unlimited
			p, audio := newTestPlayer(t, rev, 100, 100, nil)
			p.AirTime = 0

			p.Jump()
			p.AirTime = 10
			for i := 0; i < 3; i++ {
				p.VSpeed = 0
				p.Jump()
			}
			if n := audio.count(tuning.SoundDJump); n != tt.wantDJump {
				t.Fatalf("double jumps = %d, want %d", n, tt.wantDJump)
			}
			if p.HasDJump != tt.unlimited {
				t.Fatalf("HasDJump = %v, want %v", p.HasDJump, tt.unlimited)
			}
			if tt.unlimited && p.VSpeed != -rev.DJumpSpeed {
				t.Fatalf("vspeed = %v, want %v", p.VSpeed, -rev.DJumpSpeed)
			}
		})
	}
}

func TestNoDoubleJumpWithoutGroundJump(t *testing.T) {
	p, audio := newTestPlayer(t, tuning.Tilemap(), 100, 100, nil)
	p.AirTime = 10
	p.Jump()
	if p.VSpeed != 0 || len(audio.sfx) != 0 {
		t.Fatalf("vspeed=%v cues=%v, want no jump", p.VSpeed, audio.sfx)
	}
}

func TestScreenBottomGroundRule(t *testing.T) {
	rev := tuning.Classic()
	h := float64(rev.ScreenHeight)

	p, audio := newTestPlayer(t, rev, 100, h-21, nil)
	p.AirTime = 50
	p.Jump()
	if p.VSpeed != -rev.JumpSpeed || audio.count(tuning.SoundJump) != 1 {
		t.Fatalf("vspeed=%v cues=%v, want a ground jump on the screen bottom", p.VSpeed, audio.sfx)
	}

	p, audio = newTestPlayer(t, rev, 100, h-100, nil)
	p.AirTime = 0
	p.Jump()
	if p.VSpeed != 0 || len(audio.sfx) != 0 {
		t.Fatalf("vspeed=%v cues=%v, want no jump above the screen bottom", p.VSpeed, audio.sfx)
	}
}

func TestReleaseJump(t *testing.T) {
	tests := []struct {
		name   string
		rev    tuning.Revision
		vspeed float64
		want   float64
	}{
		{"rising", tuning.Tilemap(), -4, -4 * 0.45},
		{"barely rising", tuning.Tilemap(), -0.05, -0.05},
		{"falling", tuning.Tilemap(), 3, 3},
		{"classic always damps", tuning.Classic(), 3, 3 * 0.45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer(t, tt.rev, 100, 100, nil)
			p.VSpeed = tt.vspeed
			p.ReleaseJump()
			if p.VSpeed != tt.want {
				t.Fatalf("vspeed = %v, want %v", p.VSpeed, tt.want)
			}
		})
	}
}

func TestShootPool(t *testing.T) {
	rev := tuning.Tilemap()
	p, audio := newTestPlayer(t, rev, 400, 100, nil)

	for i := 0; i < rev.ProjectileLimit; i++ {
		if !p.Shoot() {
			t.Fatalf("shot %d refused", i)
		}
	}
	if p.Shoot() {
		t.Fatalf("fifth shot accepted")
	}
	if p.Bullets.Len() != rev.ProjectileLimit {
		t.Fatalf("live bullets = %d, want %d", p.Bullets.Len(), rev.ProjectileLimit)
	}
	if n := audio.count(tuning.SoundShoot); n != rev.ProjectileLimit {
		t.Fatalf("shoot cues = %d, want %d", n, rev.ProjectileLimit)
	}

	for p.Bullets.Len() == rev.ProjectileLimit {
		p.Update(keys{})
	}
	if !p.Shoot() {
		t.Fatalf("shot refused after a bullet expired")
	}
}

func TestShootFollowsFacing(t *testing.T) {
	rev := tuning.Tilemap()
	p, _ := newTestPlayer(t, rev, 400, 100, nil)
	p.FacingLeft = true
	p.Shoot()

	var got *Projectile
	p.Bullets.Each(func(b *Projectile) { got = b })
	if got == nil || got.HSpeed != -rev.ProjectileSpeed {
		t.Fatalf("bullet = %+v, want hspeed %v", got, -rev.ProjectileSpeed)
	}
	cx, cy := got.Rect.Center()
	pcx, pcy := p.Rect.Center()
	if cx != pcx || cy != pcy {
		t.Fatalf("bullet centre (%v,%v), want player centre (%v,%v)", cx, cy, pcx, pcy)
	}
}

func spikeField(x, y float64) *HazardField {
	h := NewHazardField(800, 608, 32)
	h.Add(x, y, gamemath.FullMask(32, 32))
	return h
}

func TestHazardDeathHappensOnce(t *testing.T) {
	rev := tuning.Tilemap()
	audio := &recordingAudio{}
	p := NewPlayer(rev, 100, 100, Deps{
		Hazards: spikeField(105, 110),
		Audio:   audio,
		Clips:   clips,
	})

	p.Update(keys{})
	if !p.Dead {
		t.Fatalf("player survived hazard contact")
	}
	burst := p.Blood
	if burst == nil || audio.death != 1 {
		t.Fatalf("blood=%v death cues=%d", burst, audio.death)
	}

	x, y := p.Rect.X, p.Rect.Y
	p.Update(keys{right: true})
	p.Update(keys{})
	if !p.Dead || p.Blood != burst || audio.death != 1 {
		t.Fatalf("second contact changed state: dead=%v sameBurst=%v death cues=%d", p.Dead, p.Blood == burst, audio.death)
	}
	if p.Rect.X != x || p.Rect.Y != y {
		t.Fatalf("dead player moved to (%v,%v)", p.Rect.X, p.Rect.Y)
	}
}

func TestHazardCheckedAfterBothPasses(t *testing.T) {
	rev := tuning.Tilemap()

	// The spike only overlaps where the vertical pass leaves the player.
	p := NewPlayer(rev, 100, 100, Deps{Hazards: spikeField(100, 125), Clips: clips})
	p.VSpeed = 5
	p.Update(keys{})
	if !p.Dead {
		t.Fatalf("hazard reached by the vertical pass did not kill")
	}

	// And one reached only by the horizontal pass.
	p = NewPlayer(rev, 100, 100, Deps{Hazards: spikeField(112, 100), Clips: clips})
	p.HSpeed = 2
	p.Update(keys{})
	if !p.Dead {
		t.Fatalf("hazard reached by the horizontal pass did not kill")
	}
}

func TestLandingBesideHazard(t *testing.T) {
	rev := tuning.Tilemap()
	lvl := room(floorRow(5, 0, 5)...)
	// spike sits on the floor, player lands on the floor beside it
	hazards := spikeField(64, 128)
	p := NewPlayer(rev, 40, 160-21-2, Deps{Tiles: lvl, Hazards: hazards, Clips: clips})
	p.VSpeed = 4
	p.Update(keys{})
	if p.Dead {
		t.Fatalf("player beside the spike died")
	}
	if !p.Collisions.Down || p.Rect.Bottom() != 160 {
		t.Fatalf("collisions=%+v bottom=%v", p.Collisions, p.Rect.Bottom())
	}
}

func TestDeadPlayerIgnoresActions(t *testing.T) {
	p, audio := newTestPlayer(t, tuning.Tilemap(), 100, 100, nil)
	p.Kill()
	p.Kill()
	if audio.death != 1 {
		t.Fatalf("death cues = %d, want 1", audio.death)
	}

	p.Jump()
	p.ReleaseJump()
	if p.Shoot() {
		t.Fatalf("dead player shot")
	}
	if len(audio.sfx) != 0 || p.VSpeed != 0 {
		t.Fatalf("cues=%v vspeed=%v", audio.sfx, p.VSpeed)
	}
}

func TestDeadUpdateIsIdempotent(t *testing.T) {
	rev := tuning.Tilemap()
	p, _ := newTestPlayer(t, rev, 100, 100, nil)
	p.Kill()
	burst := p.Blood

	p.Update(keys{})
	first := len(burst.Particles)
	p.Update(keys{})
	if !p.Dead || p.Blood != burst {
		t.Fatalf("dead=%v sameBurst=%v", p.Dead, p.Blood == burst)
	}
	if first != rev.BloodPerTick || len(burst.Particles) != 2*rev.BloodPerTick {
		t.Fatalf("particles after 1 and 2 ticks = %d, %d", first, len(burst.Particles))
	}
}

func TestGameOverDelay(t *testing.T) {
	rev := tuning.Tilemap()
	p, _ := newTestPlayer(t, rev, 100, 100, nil)
	if p.GameOverVisible() {
		t.Fatalf("game over visible while alive")
	}
	p.Kill()
	for i := 0; i < rev.GameOverDelay; i++ {
		p.Update(keys{})
		if p.GameOverVisible() {
			t.Fatalf("game over visible after %d ticks", i+1)
		}
	}
	p.Update(keys{})
	if !p.GameOverVisible() {
		t.Fatalf("game over hidden after %d ticks", p.DeathTicks())
	}
}

