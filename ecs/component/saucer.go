package component

// SaucerState is the active state of a saucer's state machine.
type SaucerState uint8

const (
	StateNone SaucerState = iota
	StateMoving
	StateWaiting
	StateShotWindup
	StateShooting
)

func (s SaucerState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateMoving:
		return "moving"
	case StateWaiting:
		return "waiting"
	case StateShotWindup:
		return "shot_windup"
	case StateShooting:
		return "shooting"
	default:
		return "unknown"
	}
}

// Saucer is the runtime record of one enemy actor. Each countdown is only
// meaningful while its state is active.
type Saucer struct {
	Type  string
	State SaucerState
	Alive bool

	MovingCountdownMs       float64
	WaitingCountdownMs      float64
	ShotWindupCountdownMs   float64
	ShotIntervalCountdownMs float64
	ShotsLeftToFire         int
}

var SaucerComponent = NewComponent[Saucer]()

// SaucerTuning is the per-type capability record shared by every instance
// of a saucer type. A UFO is a saucer with one shot and no windup.
type SaucerTuning struct {
	Type      string
	Radius    float64
	MoveSpeed float64 // units per ms

	MoveTimeMinMs int
	MoveTimeMaxMs int
	WaitTimeMinMs int
	WaitTimeMaxMs int

	ShotWindupMs   float64
	ShotsToFire    int
	ShotIntervalMs float64
	InterruptOdds  int

	RadarType string

	Fire             string
	SpreadCount      int
	SpreadArcDegrees float64
	FireScript       string

	MaxActive int
}

var SaucerTuningComponent = NewComponent[SaucerTuning]()
