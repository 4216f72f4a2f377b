package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/tags"
)

// inputController exposes the held movement keys to the simulation.
type inputController struct {
	input *components.InputData
}

func (c inputController) MoveLeft() bool  { return c.input.Current[cfg.ActionMoveLeft] }
func (c inputController) MoveRight() bool { return c.input.Current[cfg.ActionMoveRight] }

// UpdatePlayer applies this tick's key events, then runs one step of the
// player simulation. Must run after UpdateInput.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionJump).JustPressed {
		player.Jump()
	}
	if GetAction(input, cfg.ActionJump).JustReleased {
		player.ReleaseJump()
	}
	if GetAction(input, cfg.ActionShoot).JustPressed {
		player.Shoot()
	}
	if GetAction(input, cfg.ActionKill).JustPressed {
		player.Kill()
	}

	player.Update(inputController{input: input})
}
