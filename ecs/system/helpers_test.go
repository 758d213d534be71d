package system

import (
	"testing"

	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/ecs/entity"
	"github.com/milk9111/encounter/obj"
	"github.com/milk9111/encounter/prefabs"
	"github.com/rs/zerolog"
)

// scriptedRand replays queued values and falls back to the lower bound,
// "no interrupt" and heading 0 once a queue runs dry.
type scriptedRand struct {
	betweens   []int
	intns      []int
	directions []float64
	intnArgs   []int
}

func (r *scriptedRand) Between(min, max int) int {
	if len(r.betweens) == 0 {
		return min
	}
	v := r.betweens[0]
	r.betweens = r.betweens[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.intnArgs = append(r.intnArgs, n)
	if len(r.intns) == 0 {
		if n <= 1 {
			return 0
		}
		return 1
	}
	v := r.intns[0]
	r.intns = r.intns[1:]
	return v
}

func (r *scriptedRand) Direction() float64 {
	if len(r.directions) == 0 {
		return 0
	}
	v := r.directions[0]
	r.directions = r.directions[1:]
	return v
}

type countingSounds map[component.SoundCue]int

func (c countingSounds) Play(cue component.SoundCue) { c[cue]++ }

type countingCombat struct {
	started int
	killed  int
}

func (c *countingCombat) SetupCombat() { c.started++ }
func (c *countingCombat) EnemyKilled() { c.killed++ }

// rig is a world with real scene, obelisks and shot factory.
type rig struct {
	w       *ecs.World
	scene   *obj.Scene
	field   *obj.ObeliskField
	rng     *scriptedRand
	sounds  countingSounds
	combat  *countingCombat
	deps    Collaborators
	saucers *SaucerSystem
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		w:      ecs.NewWorld(),
		scene:  obj.NewScene(),
		field:  obj.NewObeliskField(),
		rng:    &scriptedRand{},
		sounds: countingSounds{},
		combat: &countingCombat{},
	}
	r.deps = Collaborators{
		Scene:     r.scene,
		Obstacles: r.field,
		Shots:     entity.Shots{Speed: 1.2, LifetimeMs: 3000, Radius: 6},
		Sounds:    r.sounds,
		Combat:    r.combat,
		Rand:      r.rng,
	}
	r.saucers = NewSaucerSystem(r.deps, zerolog.Nop())
	return r
}

// live creates a spawned saucer at (x, z) in the given state.
func (r *rig) live(t *testing.T, tuning component.SaucerTuning, x, z float64, state component.SaucerState) (ecs.Entity, *component.Saucer, *component.Transform) {
	t.Helper()
	e, err := entity.NewSaucer(r.w, tuning)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := ecs.Get(r.w, e, component.SaucerComponent.Kind())
	tf, _ := ecs.Get(r.w, e, component.TransformComponent.Kind())
	tf.X, tf.Y, tf.Z = x, common.CameraHeight, z
	sc.Alive = true
	sc.State = state
	r.scene.Add(e)
	return e, sc, tf
}

func (r *rig) player(t *testing.T, x, z float64) {
	t.Helper()
	if _, err := entity.NewPlayer(r.w, common.Vec3{X: x, Y: common.CameraHeight, Z: z}); err != nil {
		t.Fatal(err)
	}
}

// tick advances the world clock by dt and runs only the saucer system.
func (r *rig) tick(t *testing.T, dt float64) error {
	t.Helper()
	if err := r.w.Update(dt); err != nil {
		t.Fatal(err)
	}
	return r.saucers.Update(r.w)
}

func (r *rig) shots() int {
	return ecs.Count(r.w, component.ShotComponent.Kind())
}

func saucerTuning(shots int, windup, interval float64) component.SaucerTuning {
	t := UFOTuning()
	t.Type = "saucer_test"
	t.ShotsToFire = shots
	t.ShotWindupMs = windup
	t.ShotIntervalMs = interval
	t.MaxActive = 0
	return t
}

type fakeTable struct {
	entries []string
	types   map[string]*prefabs.SaucerType
}

func (f *fakeTable) Table() []string { return f.entries }

func (f *fakeTable) Lookup(name string) (*prefabs.SaucerType, bool) {
	t, ok := f.types[name]
	return t, ok
}

func ufoType() *prefabs.SaucerType {
	return &prefabs.SaucerType{
		Name: "ufo",
		Saucer: prefabs.SaucerComponentSpec{
			Radius:      40,
			MoveSpeed:   0.8,
			MoveTimeMs:  prefabs.RangeSpec{Min: 1000, Max: 5000},
			WaitTimeMs:  prefabs.RangeSpec{Min: 1000, Max: 2000},
			ShotsToFire: 1,
		},
		Fire:  prefabs.FireComponentSpec{Behavior: "aimed"},
		Spawn: prefabs.SpawnComponentSpec{MaxActive: 1},
		Radar: prefabs.RadarBlipComponentSpec{Type: component.RadarEnemy},
	}
}
