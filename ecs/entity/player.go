package entity

import (
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

// NewPlayer creates the player marker that saucers aim at and spawn around.
func NewPlayer(w *ecs.World, pos common.Vec3) (ecs.Entity, error) {
	return assemble(w, "player",
		with("player tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}),
		with("radar blip", component.RadarBlipComponent.Kind(), &component.RadarBlip{Type: component.RadarPlayer}),
	)
}
