package common

const (
	// CameraHeight is the eye height every flying actor is pinned to.
	CameraHeight = 40.0

	// ObeliskRadius is the collision radius of a static obelisk.
	ObeliskRadius = 40.0

	// FrameMillis is the fixed frame delta used by the sandboxes (60 TPS).
	FrameMillis = 1000.0 / 60.0

	BaseWidth  = 1280
	BaseHeight = 720
)
