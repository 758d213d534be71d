package system

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/ecs/entity"
	"github.com/milk9111/encounter/obj"
	"github.com/milk9111/encounter/prefabs"
	"github.com/rs/zerolog"
)

func TestShotFliesAlongHeading(t *testing.T) {
	w := ecs.NewWorld()
	scene := obj.NewScene()
	shots := entity.Shots{Speed: 1.2, Radius: 6}
	e, err := shots.NewInstance(w, 0, common.Vec3{Y: common.CameraHeight}, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	scene.Add(e)
	w.AddSystem(NewShotSystem(scene, obj.NewObeliskField()))

	if err := w.Update(100); err != nil {
		t.Fatal(err)
	}
	tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	// Heading pi/2 travels toward -X.
	if math.Abs(tf.X+120) > 1e-9 || math.Abs(tf.Z) > 1e-9 {
		t.Fatalf("unexpected shot position (%f, %f)", tf.X, tf.Z)
	}
}

func TestShotDiesOnObelisk(t *testing.T) {
	w := ecs.NewWorld()
	scene := obj.NewScene()
	field := obj.NewObeliskField()
	field.Add(cp.Vector{X: 0, Y: -100}, common.ObeliskRadius)

	shots := entity.Shots{Speed: 1, Radius: 6}
	e, err := shots.NewInstance(w, 0, common.Vec3{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	scene.Add(e)
	w.AddSystem(NewShotSystem(scene, field))

	for i := 0; i < 10 && ecs.IsAlive(w, e); i++ {
		if err := w.Update(10); err != nil {
			t.Fatal(err)
		}
	}
	if ecs.IsAlive(w, e) {
		t.Fatal("shot should have been destroyed by the obelisk")
	}
	if scene.Contains(e) {
		t.Fatal("destroyed shot left in the scene")
	}
}

func TestTTLExpiresShots(t *testing.T) {
	w := ecs.NewWorld()
	scene := obj.NewScene()
	shots := entity.Shots{Speed: 1, LifetimeMs: 300}
	e, err := shots.NewInstance(w, 0, common.Vec3{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	scene.Add(e)
	w.AddSystem(NewTTLSystem(scene))

	if err := w.Update(299); err != nil {
		t.Fatal(err)
	}
	if !ecs.IsAlive(w, e) {
		t.Fatal("shot expired early")
	}
	if err := w.Update(1); err != nil {
		t.Fatal(err)
	}
	if ecs.IsAlive(w, e) || scene.Contains(e) {
		t.Fatal("shot should expire once its lifetime is spent")
	}
}

type fakeChanges struct {
	batches [][]string
}

func (f *fakeChanges) Poll() []string {
	if len(f.batches) == 0 {
		return nil
	}
	b := f.batches[0]
	f.batches = f.batches[1:]
	return b
}

type fakeCatalog struct {
	fakeTable
	reloads []string
	names   []string
	err     error
}

func (f *fakeCatalog) Reload(path string) ([]string, error) {
	f.reloads = append(f.reloads, path)
	return f.names, f.err
}

func TestHotReloadRetunesLiveSaucers(t *testing.T) {
	r := newRig(t)
	_, sc, _ := r.live(t, UFOTuning(), 0, 0, component.StateWaiting)
	sc.WaitingCountdownMs = 900
	other, _, _ := r.live(t, saucerTuning(3, 600, 800), 0, 0, component.StateMoving)

	faster := ufoType()
	faster.Saucer.MoveSpeed = 2.5
	catalog := &fakeCatalog{
		fakeTable: fakeTable{entries: []string{"ufo"}, types: map[string]*prefabs.SaucerType{"ufo": faster}},
		names:     []string{"ufo"},
	}
	changes := &fakeChanges{batches: [][]string{{"prefabs/ufo.yaml"}}}
	r.w.AddSystem(NewHotReloadSystem(changes, catalog, r.saucers, zerolog.Nop()))

	if err := r.w.Update(16); err != nil {
		t.Fatal(err)
	}

	var ufo *component.SaucerTuning
	ecs.ForEach2(r.w, component.SaucerComponent.Kind(), component.SaucerTuningComponent.Kind(), func(_ ecs.Entity, s *component.Saucer, tn *component.SaucerTuning) {
		if s.Type == "ufo" {
			ufo = tn
		}
	})
	if ufo == nil || ufo.MoveSpeed != 2.5 {
		t.Fatalf("expected ufo move speed 2.5, got %+v", ufo)
	}
	if sc.State != component.StateWaiting || sc.WaitingCountdownMs != 900 {
		t.Fatalf("reload must not disturb state: %s %f", sc.State, sc.WaitingCountdownMs)
	}
	otherTuning, _ := ecs.Get(r.w, other, component.SaucerTuningComponent.Kind())
	if otherTuning.MoveSpeed != DefaultMoveSpeed {
		t.Fatalf("other types must keep their tuning, got %f", otherTuning.MoveSpeed)
	}
}

func TestHotReloadSurvivesBrokenEdit(t *testing.T) {
	r := newRig(t)
	catalog := &fakeCatalog{err: errors.New("yaml: line 3: did not find expected key")}
	changes := &fakeChanges{batches: [][]string{{"prefabs/ufo.yaml"}, {"prefabs/scripts/saucer_sweep.tengo"}}}
	r.w.AddSystem(NewHotReloadSystem(changes, catalog, r.saucers, zerolog.Nop()))

	for i := 0; i < 2; i++ {
		if err := r.w.Update(16); err != nil {
			t.Fatalf("broken prefab ended the frame: %v", err)
		}
	}
	if len(catalog.reloads) != 2 {
		t.Fatalf("expected both changes to reach the catalog, got %v", catalog.reloads)
	}
}

func TestRetuneCountsMatchingSaucers(t *testing.T) {
	r := newRig(t)
	r.live(t, UFOTuning(), 0, 0, component.StateMoving)
	r.live(t, UFOTuning(), 10, 10, component.StateMoving)
	r.live(t, saucerTuning(2, 0, 100), 0, 0, component.StateMoving)

	tuning := UFOTuning()
	tuning.Radius = 55
	if n := Retune(r.w, tuning); n != 2 {
		t.Fatalf("expected 2 retuned, got %d", n)
	}
}
