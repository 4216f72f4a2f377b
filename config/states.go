package config

import "github.com/GrapeSkin2191/iwanna/shared/tuning"

// Type aliases so client code can keep using config.StateID etc.
type StateID = tuning.StateID

// Re-export animation clip constants.
const (
	StateNone = tuning.StateNone

	Idle    = tuning.Idle
	Running = tuning.Running
	Jump    = tuning.Jump
	Fall    = tuning.Fall
	Bullet  = tuning.Bullet
)
