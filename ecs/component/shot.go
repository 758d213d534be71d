package component

// Shot is a projectile travelling along its transform heading.
type Shot struct {
	// Owner is the raw handle of the firing entity.
	Owner  uint64
	Speed  float64 // units per ms
	Radius float64
}

var ShotComponent = NewComponent[Shot]()
