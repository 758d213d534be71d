package entity

import (
	"fmt"

	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

// part adds one component to an entity under construction.
type part func(w *ecs.World, e ecs.Entity) error

func with[T any](name string, kind component.ComponentKind[T], value *T) part {
	return func(w *ecs.World, e ecs.Entity) error {
		if err := ecs.Add(w, e, kind, value); err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		return nil
	}
}

// assemble creates an entity from parts. If any part fails the entity is
// destroyed again, so callers never see a half-built actor.
func assemble(w *ecs.World, what string, parts ...part) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	for _, p := range parts {
		if err := p(w, entity); err != nil {
			ecs.DestroyEntity(w, entity)
			return 0, fmt.Errorf("%s: %w", what, err)
		}
	}
	return entity, nil
}
