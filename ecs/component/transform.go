package component

// Transform places an actor in the arena. Y is height; RotationY is the
// heading in radians about the vertical axis.
type Transform struct {
	X         float64
	Y         float64
	Z         float64
	RotationY float64
}

var TransformComponent = NewComponent[Transform]()
