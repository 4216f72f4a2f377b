package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
	Decor  = donburi.NewTag().SetName("Decor")
	Spike  = donburi.NewTag().SetName("Spike")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
)
