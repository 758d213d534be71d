package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

// ShotSystem flies projectiles along their heading and removes the ones that
// hit an obelisk.
type ShotSystem struct {
	scene     Scene
	obstacles Obstacles
}

func NewShotSystem(scene Scene, obstacles Obstacles) *ShotSystem {
	return &ShotSystem{scene: scene, obstacles: obstacles}
}

func (s *ShotSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	dt := w.Delta()
	ecs.ForEach2(w, component.ShotComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, shot *component.Shot, tf *component.Transform) {
		dx, dz := common.Forward(tf.RotationY)
		tf.X += dx * shot.Speed * dt
		tf.Z += dz * shot.Speed * dt

		if s.obstacles == nil {
			return
		}
		if _, hit := s.obstacles.CollidingObelisk(cp.Vector{X: tf.X, Y: tf.Z}, shot.Radius); hit {
			s.scene.Remove(e)
			ecs.DestroyEntity(w, e)
		}
	})
	return nil
}
