package component

// TTL destroys its entity once RemainingMs runs out.
type TTL struct {
	RemainingMs float64
}

var TTLComponent = NewComponent[TTL]()
