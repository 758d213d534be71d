package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
)

func TestObeliskFieldQueries(t *testing.T) {
	f := NewObeliskField()
	o := f.Add(cp.Vector{X: 100, Y: 100}, 40)

	cases := []struct {
		name      string
		pos       cp.Vector
		radius    float64
		close     bool
		colliding bool
	}{
		{"far_away", cp.Vector{X: 1000, Y: 1000}, 40, false, false},
		{"overlapping", cp.Vector{X: 150, Y: 100}, 40, true, true},
		{"bbox_corner_only", cp.Vector{X: 165, Y: 165}, 40, true, false},
		{"touching", cp.Vector{X: 180, Y: 100}, 40, true, false},
		{"centred", cp.Vector{X: 100, Y: 100}, 10, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := f.IsCloseToAnObelisk(c.pos, c.radius); got != c.close {
				t.Fatalf("IsCloseToAnObelisk = %v, want %v", got, c.close)
			}
			got, ok := f.CollidingObelisk(c.pos, c.radius)
			if ok != c.colliding {
				t.Fatalf("CollidingObelisk ok = %v, want %v", ok, c.colliding)
			}
			if ok && got.ID != o.ID {
				t.Fatalf("expected obelisk %d, got %d", o.ID, got.ID)
			}
		})
	}
}

func TestCollidingObeliskPicksDeepest(t *testing.T) {
	f := NewObeliskField()
	f.Add(cp.Vector{X: 0, Y: 0}, 40)
	deep := f.Add(cp.Vector{X: 60, Y: 0}, 40)

	got, ok := f.CollidingObelisk(cp.Vector{X: 70, Y: 0}, 20)
	if !ok || got.ID != deep.ID {
		t.Fatalf("expected deepest obelisk %d, got %+v ok=%v", deep.ID, got, ok)
	}
}

func TestMoveCircleOutOfStaticCircle(t *testing.T) {
	f := NewObeliskField()
	cases := []struct {
		name   string
		static cp.Vector
		moving cp.Vector
	}{
		{"right", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 10, Y: 0}},
		{"diagonal", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 20, Y: 30}},
		{"coincident", cp.Vector{X: 3, Y: 3}, cp.Vector{X: 3, Y: 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := c.moving
			pos := c.moving
			f.MoveCircleOutOfStaticCircle(c.static, 40, &pos, 25)
			if d := pos.Distance(c.static); math.Abs(d-65) > 1e-6 {
				t.Fatalf("expected centre distance 65, got %f", d)
			}
			if before.Distance(c.static) > 0 {
				want := before.Sub(c.static).Normalize()
				got := pos.Sub(c.static).Normalize()
				if want.Distance(got) > 1e-6 {
					t.Fatalf("push-out changed direction: want %v got %v", want, got)
				}
			}
		})
	}
}

func TestScatterObelisksKeepsClear(t *testing.T) {
	rng := common.NewRand(3)
	f := ScatterObelisks(rng, 30, 40, 4000, cp.Vector{}, 200)
	if len(f.Obelisks()) == 0 {
		t.Fatalf("expected obelisks to be placed")
	}
	for i, a := range f.Obelisks() {
		if a.Center.Length() < 240 {
			t.Fatalf("obelisk %d inside keep-clear circle: %v", i, a.Center)
		}
		for j, b := range f.Obelisks() {
			if i != j && a.Center.Distance(b.Center) < a.Radius+b.Radius {
				t.Fatalf("obelisks %d and %d overlap", i, j)
			}
		}
	}
}
