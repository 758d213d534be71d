package system

import (
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

// TTLSystem counts TTL components down by the frame delta and destroys
// entities when they run out.
type TTLSystem struct {
	scene Scene
}

func NewTTLSystem(scene Scene) *TTLSystem {
	return &TTLSystem{scene: scene}
}

func (s *TTLSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	dt := w.Delta()
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.RemainingMs -= dt
		if ttl.RemainingMs > 0 {
			return
		}

		if s.scene != nil {
			s.scene.Remove(e)
		}
		ecs.DestroyEntity(w, e)
	})
	return nil
}
