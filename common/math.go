package common

import "math"

// Vec3 is a world-space point. The ground plane is X/Z; Y is height.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Forward returns the unit ground-plane direction an actor with the given
// heading travels in. Heading 0 faces -Z.
func Forward(heading float64) (dx, dz float64) {
	return -math.Sin(heading), -math.Cos(heading)
}

// HeadingTowards returns the heading that faces (toX, toZ) from (fromX, fromZ).
func HeadingTowards(fromX, fromZ, toX, toZ float64) float64 {
	return NormalizeHeading(math.Atan2(-(toX - fromX), -(toZ - fromZ)))
}

// NormalizeHeading wraps a heading into [0, 2π).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

// DistanceXZ is the ground-plane distance between two points.
func DistanceXZ(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}
