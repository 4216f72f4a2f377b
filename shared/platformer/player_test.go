package platformer

import (
	"math"
	"testing"

	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

type recordingAudio struct {
	sfx   []tuning.SoundID
	death int
}

func (a *recordingAudio) PlaySFX(s tuning.SoundID) { a.sfx = append(a.sfx, s) }
func (a *recordingAudio) PlayDeathMusic()          { a.death++ }

func (a *recordingAudio) count(s tuning.SoundID) int {
	n := 0
	for _, got := range a.sfx {
		if got == s {
			n++
		}
	}
	return n
}

type keys struct{ left, right bool }

func (k keys) MoveLeft() bool  { return k.left }
func (k keys) MoveRight() bool { return k.right }

var clips = map[tuning.StateID]int{
	tuning.Idle:    4,
	tuning.Running: 4,
	tuning.Jump:    2,
	tuning.Fall:    2,
}

// room builds a 32px grid with a solid tile at every given cell.
func room(cells ...leveldata.Loc) *leveldata.Level {
	lvl := leveldata.NewLevel(32)
	for _, c := range cells {
		lvl.Set(c, leveldata.Tile{Type: "block"}, true)
	}
	return lvl
}

func floorRow(y, from, to int) []leveldata.Loc {
	var locs []leveldata.Loc
	for x := from; x <= to; x++ {
		locs = append(locs, leveldata.Loc{X: x, Y: y})
	}
	return locs
}

func newTestPlayer(t *testing.T, rev tuning.Revision, x, y float64, tiles TileQuerier) (*Player, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	p := NewPlayer(rev, x, y, Deps{
		Tiles: tiles,
		Audio: audio,
		Mask:  gamemath.FullMask(11, 21),
		Clips: clips,
	})
	return p, audio
}

func TestRestingOnFloor(t *testing.T) {
	rev := tuning.Tilemap()
	lvl := room(floorRow(2, 0, 3)...)
	// bottom edge sits on the tile row at y=64
	p, _ := newTestPlayer(t, rev, 40, 64-21, lvl)
	p.VSpeed = rev.Gravity

	p.Collisions = Collisions{}
	p.moveY()
	if !p.Collisions.Down {
		t.Fatalf("expected a down collision")
	}
	if p.VSpeed != 0 {
		t.Fatalf("vspeed after vertical pass = %v, want 0", p.VSpeed)
	}
	if p.Rect.Y != 43 {
		t.Fatalf("y = %v, want 43", p.Rect.Y)
	}

	// gravity from the previous tick pulls the player into the floor again
	p.VSpeed = rev.Gravity
	for i := 0; i < 10; i++ {
		p.Update(keys{})
		if !p.Collisions.Down || p.Rect.Y != 43 || p.AirTime != 0 {
			t.Fatalf("tick %d: down=%v y=%v air=%d", i, p.Collisions.Down, p.Rect.Y, p.AirTime)
		}
		if p.VSpeed != rev.Gravity {
			t.Fatalf("tick %d: vspeed = %v, want gravity %v re-applied", i, p.VSpeed, rev.Gravity)
		}
	}
}

func TestWallOnePixelAway(t *testing.T) {
	lvl := room(leveldata.Loc{X: 2, Y: 1})
	p, _ := newTestPlayer(t, tuning.Tilemap(), 64-1-11, 35, lvl)
	p.HSpeed = 2

	p.moveX()
	if p.Rect.Right() != 64 {
		t.Fatalf("right edge = %v, want 64", p.Rect.Right())
	}
	if !p.Collisions.Right || p.Collisions.Left {
		t.Fatalf("collisions = %+v, want right only", p.Collisions)
	}
	if p.HSpeed != 0 {
		t.Fatalf("hspeed = %v, want 0", p.HSpeed)
	}
}

func TestWallOnTheLeft(t *testing.T) {
	lvl := room(leveldata.Loc{X: 0, Y: 1})
	p, _ := newTestPlayer(t, tuning.Tilemap(), 33, 35, lvl)
	p.HSpeed = -2

	p.moveX()
	if p.Rect.Left() != 32 || !p.Collisions.Left || p.HSpeed != 0 {
		t.Fatalf("left=%v collisions=%+v hspeed=%v", p.Rect.Left(), p.Collisions, p.HSpeed)
	}
}

func TestStationaryOverlapIsNotResolved(t *testing.T) {
	lvl := room(leveldata.Loc{X: 1, Y: 1})
	p, _ := newTestPlayer(t, tuning.Tilemap(), 30, 40, lvl)

	p.moveX()
	if p.Rect.X != 30 {
		t.Fatalf("x = %v, want 30", p.Rect.X)
	}
	if p.Collisions.Left || p.Collisions.Right {
		t.Fatalf("collisions = %+v, want none", p.Collisions)
	}
}

func TestHorizontalPassLeavesNoOverlap(t *testing.T) {
	cells := floorRow(10, 0, 20)
	for y := 5; y <= 9; y++ {
		cells = append(cells, leveldata.Loc{X: 12, Y: y})
	}
	cells = append(cells,
		leveldata.Loc{X: 3, Y: 7}, leveldata.Loc{X: 4, Y: 7},
		leveldata.Loc{X: 8, Y: 4}, leveldata.Loc{X: 8, Y: 5},
		leveldata.Loc{X: 16, Y: 8},
	)
	lvl := room(cells...)

	var solids []gamemath.Rect
	for _, loc := range lvl.SortedLocs(true) {
		solids = append(solids, gamemath.NewRect(float64(loc.X*32), float64(loc.Y*32), 32, 32))
	}
	overlapsAny := func(r gamemath.Rect) bool {
		for _, s := range solids {
			if r.Overlaps(s) {
				return true
			}
		}
		return false
	}

	rev := tuning.Tilemap()
	checked := 0
	for x := 0.0; x < 640; x += 3 {
		for y := 100.0; y < 320; y += 7 {
			for _, speed := range []float64{rev.MaxHSpeed, -rev.MaxHSpeed} {
				p, _ := newTestPlayer(t, rev, x, y, lvl)
				if overlapsAny(p.Rect) {
					continue
				}
				p.HSpeed = speed
				p.moveX()
				if overlapsAny(p.Rect) {
					t.Fatalf("start (%v,%v) speed %v: player %+v still overlaps a tile", x, y, speed, p.Rect)
				}
				checked++
			}
		}
	}
	if checked == 0 {
		t.Fatalf("no start positions checked")
	}
}

func TestVerticalPassHitsCeiling(t *testing.T) {
	lvl := room(leveldata.Loc{X: 1, Y: 0})
	p, _ := newTestPlayer(t, tuning.Tilemap(), 40, 34, lvl)
	p.VSpeed = -5

	p.moveY()
	if p.Rect.Top() != 32 || !p.Collisions.Up || p.VSpeed != 0 {
		t.Fatalf("top=%v collisions=%+v vspeed=%v", p.Rect.Top(), p.Collisions, p.VSpeed)
	}
}

func TestCollisionFlagsResetEachTick(t *testing.T) {
	lvl := room(leveldata.Loc{X: 2, Y: 1})
	p, _ := newTestPlayer(t, tuning.Tilemap(), 64-1-11, 35, lvl)
	p.HSpeed = 2

	p.Update(keys{})
	if !p.Collisions.Right {
		t.Fatalf("expected right collision on first tick")
	}
	p.Update(keys{})
	if p.Collisions.Right {
		t.Fatalf("right collision carried into the next tick")
	}
}

func TestInputDrivesNextTick(t *testing.T) {
	rev := tuning.Tilemap()
	p, _ := newTestPlayer(t, rev, 100, 100, nil)

	p.Update(keys{right: true})
	if p.Rect.X != 100 {
		t.Fatalf("input moved the player in the tick it was read: x = %v", p.Rect.X)
	}
	if p.HSpeed != rev.MaxHSpeed || p.FacingLeft || p.Anim.Clip() != tuning.Running {
		t.Fatalf("hspeed=%v facingLeft=%v clip=%v", p.HSpeed, p.FacingLeft, p.Anim.Clip())
	}

	p.Update(keys{left: true})
	if p.Rect.X != 100+rev.MaxHSpeed {
		t.Fatalf("x = %v, want %v", p.Rect.X, 100+rev.MaxHSpeed)
	}
	if p.HSpeed != -rev.MaxHSpeed || !p.FacingLeft {
		t.Fatalf("hspeed=%v facingLeft=%v", p.HSpeed, p.FacingLeft)
	}

	p.Update(keys{left: true, right: true})
	if p.HSpeed != rev.MaxHSpeed {
		t.Fatalf("right should win when both keys are held, hspeed = %v", p.HSpeed)
	}

	p.Update(keys{})
	if p.HSpeed != 0 {
		t.Fatalf("hspeed = %v, want 0 with no keys", p.HSpeed)
	}
}

func TestVSpeedClamp(t *testing.T) {
	rev := tuning.Tilemap()

	tests := []struct {
		name  string
		start float64
	}{
		{"free fall", 0},
		{"launched upward", -50},
		{"launched downward", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer(t, rev, 100, 100, nil)
			p.VSpeed = tt.start
			for i := 0; i < 120; i++ {
				p.Update(keys{})
				if math.Abs(p.VSpeed) > rev.MaxVSpeed {
					t.Fatalf("tick %d: |vspeed| = %v exceeds %v", i, math.Abs(p.VSpeed), rev.MaxVSpeed)
				}
			}
			if p.VSpeed != rev.MaxVSpeed {
				t.Fatalf("terminal vspeed = %v, want %v", p.VSpeed, rev.MaxVSpeed)
			}
		})
	}

	p, _ := newTestPlayer(t, rev, 100, 100, nil)
	p.VSpeed = -50
	p.Update(keys{})
	if p.VSpeed != -rev.MaxVSpeed {
		t.Fatalf("clamp lost the sign: vspeed = %v, want %v", p.VSpeed, -rev.MaxVSpeed)
	}
}

func TestAirborneAnimation(t *testing.T) {
	rev := tuning.Tilemap()
	p, _ := newTestPlayer(t, rev, 100, 300, nil)
	p.VSpeed = -rev.JumpSpeed

	for i := 0; i < 2; i++ {
		p.Update(keys{})
		if p.Anim.Clip() != tuning.Idle {
			t.Fatalf("tick %d: clip = %v, want idle inside the forgiveness window", i, p.Anim.Clip())
		}
	}
	p.Update(keys{})
	if p.Anim.Clip() != tuning.Jump {
		t.Fatalf("clip = %v, want jump", p.Anim.Clip())
	}

	for p.VSpeed <= rev.AnimEpsilon {
		p.Update(keys{})
	}
	if p.Anim.Clip() != tuning.Fall {
		t.Fatalf("clip = %v, want fall", p.Anim.Clip())
	}
}

func TestScreenBoundedRevision(t *testing.T) {
	rev := tuning.Classic()
	h := float64(rev.ScreenHeight)

	p, _ := newTestPlayer(t, rev, 100, h-21-1, nil)
	p.VSpeed = 5
	p.moveY()
	if p.Rect.Bottom() != h || !p.Collisions.Down || p.VSpeed != 0 {
		t.Fatalf("bottom=%v collisions=%+v vspeed=%v", p.Rect.Bottom(), p.Collisions, p.VSpeed)
	}

	p, _ = newTestPlayer(t, rev, 1, 100, nil)
	p.HSpeed = -rev.MaxHSpeed
	p.moveX()
	if p.Rect.Left() != 0 || !p.Collisions.Left {
		t.Fatalf("left=%v collisions=%+v", p.Rect.Left(), p.Collisions)
	}

	p, _ = newTestPlayer(t, rev, float64(rev.ScreenWidth)-12, 100, nil)
	p.HSpeed = rev.MaxHSpeed
	p.moveX()
	if p.Rect.Right() != float64(rev.ScreenWidth) || !p.Collisions.Right {
		t.Fatalf("right=%v collisions=%+v", p.Rect.Right(), p.Collisions)
	}

	unbounded, _ := newTestPlayer(t, tuning.Tilemap(), 1, 100, nil)
	unbounded.HSpeed = -2
	unbounded.moveX()
	if unbounded.Rect.Left() != -1 {
		t.Fatalf("tilemap revision clamped to the screen: left = %v", unbounded.Rect.Left())
	}
}
