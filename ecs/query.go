package ecs

import "github.com/milk9111/encounter/ecs/component"

// Query returns live entities carrying every listed component kind.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	var out []Entity
	for _, slot := range smallest(w, ids...) {
		e, ok := w.entities.current(slot)
		if !ok {
			continue
		}
		match := true
		for _, id := range ids {
			if !w.store(id, false).Has(slot) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}
