package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
)

// Obelisk is a static circular obstacle. Positions are on the ground plane,
// with the cp Y axis carrying world Z.
type Obelisk struct {
	ID     int
	Center cp.Vector
	Radius float64
}

// ObeliskField indexes obelisks as static circle shapes in a chipmunk space.
// The space is only used for its spatial index and shape queries; it is
// never stepped.
type ObeliskField struct {
	space    *cp.Space
	obelisks []Obelisk
}

func NewObeliskField() *ObeliskField {
	return &ObeliskField{space: cp.NewSpace()}
}

// Add places an obelisk and returns it.
func (f *ObeliskField) Add(center cp.Vector, radius float64) Obelisk {
	o := Obelisk{ID: len(f.obelisks), Center: center, Radius: radius}
	shape := cp.NewCircle(f.space.StaticBody, radius, center)
	shape.UserData = o
	f.space.AddShape(shape)
	f.obelisks = append(f.obelisks, o)
	return o
}

// Obelisks returns every obelisk in insertion order.
func (f *ObeliskField) Obelisks() []Obelisk {
	if f == nil {
		return nil
	}
	return f.obelisks
}

// ScatterObelisks fills a square arena centred on the origin with count
// obelisks that do not overlap each other or the keep-clear circle.
func ScatterObelisks(rng *common.Rand, count int, radius, arenaSize float64, keepClear cp.Vector, clearRadius float64) *ObeliskField {
	f := NewObeliskField()
	half := arenaSize/2 - radius
	if half <= 0 || rng == nil {
		return f
	}
	for attempts := 0; len(f.obelisks) < count && attempts < count*50; attempts++ {
		c := cp.Vector{
			X: (rng.Float64()*2 - 1) * half,
			Y: (rng.Float64()*2 - 1) * half,
		}
		if c.Distance(keepClear) < radius+clearRadius {
			continue
		}
		if f.IsCloseToAnObelisk(c, radius*2) {
			continue
		}
		f.Add(c, radius)
	}
	return f
}

// IsCloseToAnObelisk is the broad phase: it reports whether the bounding box
// of the circle touches the bounding box of any obelisk.
func (f *ObeliskField) IsCloseToAnObelisk(pos cp.Vector, radius float64) bool {
	if f == nil || len(f.obelisks) == 0 {
		return false
	}
	found := false
	f.space.BBQuery(cp.NewBBForCircle(pos, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		found = true
	}, nil)
	return found
}

// CollidingObelisk is the narrow phase: it returns the most deeply
// overlapping obelisk, if the circle overlaps any.
func (f *ObeliskField) CollidingObelisk(pos cp.Vector, radius float64) (Obelisk, bool) {
	if f == nil || len(f.obelisks) == 0 {
		return Obelisk{}, false
	}
	var (
		best      Obelisk
		bestDepth float64
		found     bool
	)
	f.space.BBQuery(cp.NewBBForCircle(pos, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		o, ok := shape.UserData.(Obelisk)
		if !ok {
			return
		}
		// Distance is negative inside the shape.
		depth := radius - shape.PointQuery(pos).Distance
		if depth <= 0 {
			return
		}
		if !found || depth > bestDepth {
			best, bestDepth, found = o, depth, true
		}
	}, nil)
	return best, found
}

// MoveCircleOutOfStaticCircle pushes moving out along the line between the
// two centres so the circles just touch. Coincident centres push along +X.
func (f *ObeliskField) MoveCircleOutOfStaticCircle(static cp.Vector, staticRadius float64, moving *cp.Vector, movingRadius float64) {
	if moving == nil {
		return
	}
	dir := moving.Sub(static)
	if dir.Length() == 0 {
		dir = cp.Vector{X: 1}
	}
	*moving = static.Add(dir.Normalize().Mult(staticRadius + movingRadius))
}
