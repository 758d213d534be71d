package system

//go:generate go tool mockgen -destination=./mocks/interfaces_mock.go -package=mocks . Scene,SpawnLocator,Sounds,Combat

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/obj"
)

// Scene controls which actors are rendered.
type Scene interface {
	Add(e ecs.Entity)
	Remove(e ecs.Entity)
}

// SpawnLocator finds spawn points near the player.
type SpawnLocator interface {
	RandomLocationCloseToPlayer(maxDistance float64) (common.Vec3, error)
}

// Obstacles answers collision queries against static obelisks.
type Obstacles interface {
	IsCloseToAnObelisk(pos cp.Vector, radius float64) bool
	CollidingObelisk(pos cp.Vector, radius float64) (obj.Obelisk, bool)
	MoveCircleOutOfStaticCircle(static cp.Vector, staticRadius float64, moving *cp.Vector, movingRadius float64)
}

// ShotFactory creates projectile actors.
type ShotFactory interface {
	NewInstance(w *ecs.World, owner ecs.Entity, pos common.Vec3, heading float64) (ecs.Entity, error)
}

// Sounds is a fire-and-forget cue sink.
type Sounds interface {
	Play(cue component.SoundCue)
}

// Combat is told when fighting starts and when an enemy dies.
type Combat interface {
	SetupCombat()
	EnemyKilled()
}

// Random is the shared gameplay random source.
type Random interface {
	Intn(n int) int
	Between(min, max int) int
	Direction() float64
}

// Collaborators bundles the host services the enemy systems consume.
type Collaborators struct {
	Scene     Scene
	Locator   SpawnLocator
	Obstacles Obstacles
	Shots     ShotFactory
	Sounds    Sounds
	Combat    Combat
	Rand      Random
}

// PlayerPosition returns the position of the player-tagged entity.
func PlayerPosition(w *ecs.World) (common.Vec3, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}, true
}
