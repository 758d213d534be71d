package system

import "errors"

var (
	// ErrUnknownState means a live saucer carries a state outside the
	// machine. The actor is corrupt and the frame is aborted.
	ErrUnknownState = errors.New("saucer: unknown state")
	// ErrUnknownSubtype means the spawn table names a type with no prefab.
	ErrUnknownSubtype = errors.New("spawn: unknown subtype")
	// ErrNoFireBehavior rejects a saucer type that cannot shoot.
	ErrNoFireBehavior = errors.New("saucer: no fire behavior")
	// ErrUnknownFireBehavior rejects a fire behavior name with no handler.
	ErrUnknownFireBehavior = errors.New("saucer: unknown fire behavior")
)
