package ecs

// System updates a world each frame.
type System interface {
	Update(w *World) error
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs systems in order and stops at the first error.
func (s *Scheduler) Update(w *World) error {
	for _, system := range s.systems {
		if err := system.Update(w); err != nil {
			return err
		}
	}
	return nil
}
