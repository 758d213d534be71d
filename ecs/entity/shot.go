package entity

import (
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

// Shots builds projectile actors.
type Shots struct {
	Speed      float64 // units per ms
	LifetimeMs float64
	Radius     float64
}

func (f Shots) NewInstance(w *ecs.World, owner ecs.Entity, pos common.Vec3, heading float64) (ecs.Entity, error) {
	parts := []part{
		with("shot", component.ShotComponent.Kind(), &component.Shot{
			Owner:  uint64(owner),
			Speed:  f.Speed,
			Radius: f.Radius,
		}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{
			X:         pos.X,
			Y:         pos.Y,
			Z:         pos.Z,
			RotationY: heading,
		}),
		with("radar blip", component.RadarBlipComponent.Kind(), &component.RadarBlip{Type: component.RadarShot}),
	}
	if f.LifetimeMs > 0 {
		parts = append(parts, with("ttl", component.TTLComponent.Kind(), &component.TTL{RemainingMs: f.LifetimeMs}))
	}
	return assemble(w, "shot", parts...)
}
