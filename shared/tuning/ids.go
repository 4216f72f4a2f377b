// Package tuning holds the versioned game configuration and the IDs shared by
// the simulation and the client. It must have zero dependencies on ebiten so
// the simulation packages stay headless and testable.
package tuning

// StateID identifies an animation clip.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Running
	Jump
	Fall
	Bullet
)

// StateToFileName maps StateID to the directory holding its frames.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "run",
	Jump:    "jump",
	Fall:    "fall",
	Bullet:  "bullet",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}

// SoundID represents a logical sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDJump
	SoundShoot
)

// TicksPerSecond is the fixed update rate every tick-counted value assumes.
const TicksPerSecond = 60
