package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
		components.Sprite,
	)
	Decor = newArchetype(
		tags.Decor,
		components.Sprite,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
