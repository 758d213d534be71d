package entity

import (
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

// NewSaucer creates an inert saucer: no state, not alive, not in any scene.
func NewSaucer(w *ecs.World, tuning component.SaucerTuning) (ecs.Entity, error) {
	return assemble(w, "saucer",
		with("enemy tag", component.EnemyTagComponent.Kind(), &component.EnemyTag{}),
		with("saucer", component.SaucerComponent.Kind(), &component.Saucer{
			Type:  tuning.Type,
			State: component.StateNone,
		}),
		with("tuning", component.SaucerTuningComponent.Kind(), &tuning),
		with("transform", component.TransformComponent.Kind(), &component.Transform{}),
		with("radar blip", component.RadarBlipComponent.Kind(), &component.RadarBlip{Type: tuning.RadarType}),
	)
}
