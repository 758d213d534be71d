package obj

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

func TestGridRandomLocationCloseToPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 200, Z: -300})

	field := NewObeliskField()
	field.Add(cp.Vector{X: 400, Y: -300}, 40)

	g := NewGrid(w, field, common.NewRand(5), 4000, 80)
	for i := 0; i < 200; i++ {
		p, err := g.RandomLocationCloseToPlayer(600)
		if err != nil {
			t.Fatal(err)
		}
		d := common.DistanceXZ(p, common.Vec3{X: 200, Z: -300})
		if d > 600 {
			t.Fatalf("spawn point %v is %f from the player", p, d)
		}
		if field.IsCloseToAnObelisk(cp.Vector{X: p.X, Y: p.Z}, 40) {
			t.Fatalf("spawn point %v touches an obelisk", p)
		}
	}
}

func TestGridNoCandidates(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrid(w, NewObeliskField(), common.NewRand(1), 4000, 80)
	if _, err := g.RandomLocationCloseToPlayer(10); !errors.Is(err, ErrNoSpawnPoint) {
		t.Fatalf("expected ErrNoSpawnPoint, got %v", err)
	}
}

func TestSceneMembership(t *testing.T) {
	w := ecs.NewWorld()
	a := ecs.CreateEntity(w)
	b := ecs.CreateEntity(w)
	c := ecs.CreateEntity(w)

	s := NewScene()
	s.Add(a)
	s.Add(b)
	s.Add(b)
	s.Add(c)
	if s.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", s.Len())
	}

	s.Remove(a)
	if s.Contains(a) || !s.Contains(b) || !s.Contains(c) {
		t.Fatalf("unexpected membership after remove: %v", s.Members())
	}

	ecs.DestroyEntity(w, c)
	s.Prune(w)
	if s.Contains(c) || s.Len() != 1 {
		t.Fatalf("expected dead entity pruned, got %v", s.Members())
	}
}
