package obj

import "github.com/milk9111/encounter/ecs"

// Scene tracks which entities are currently rendered.
type Scene struct {
	members []ecs.Entity
	index   map[ecs.Entity]int
}

func NewScene() *Scene {
	return &Scene{index: make(map[ecs.Entity]int)}
}

func (s *Scene) Add(e ecs.Entity) {
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.members)
	s.members = append(s.members, e)
}

func (s *Scene) Remove(e ecs.Entity) {
	idx, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.members) - 1
	s.members[idx] = s.members[last]
	s.index[s.members[idx]] = idx
	s.members = s.members[:last]
	delete(s.index, e)
}

func (s *Scene) Contains(e ecs.Entity) bool {
	_, ok := s.index[e]
	return ok
}

func (s *Scene) Len() int {
	return len(s.members)
}

// Members returns a copy of the current membership.
func (s *Scene) Members() []ecs.Entity {
	return append([]ecs.Entity(nil), s.members...)
}

// Prune drops members whose entities no longer exist in w.
func (s *Scene) Prune(w *ecs.World) {
	for _, e := range s.Members() {
		if !ecs.IsAlive(w, e) {
			s.Remove(e)
		}
	}
}
