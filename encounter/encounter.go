package encounter

import (
	"github.com/google/uuid"
	"github.com/milk9111/encounter/ecs"
	"github.com/rs/zerolog"
)

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpawning
	PhaseCombat
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// SpawnTimer arms the next spawn.
type SpawnTimer interface {
	StartSpawnTimer(w *ecs.World)
}

// LiveCounter reports how many saucers are still alive.
type LiveCounter func(w *ecs.World) int

// Encounter tracks one fight: it arms the spawner, switches to combat when a
// saucer appears and re-arms once the last saucer dies.
type Encounter struct {
	id    uuid.UUID
	phase Phase
	kills int

	w       *ecs.World
	spawner SpawnTimer
	live    LiveCounter
	log     zerolog.Logger
}

func New(log zerolog.Logger) *Encounter {
	id := uuid.New()
	return &Encounter{
		id:  id,
		log: log.With().Str("encounter", id.String()).Logger(),
	}
}

// Bind attaches the world and spawner. It is separate from New because the
// spawner itself reports back to the encounter.
func (e *Encounter) Bind(w *ecs.World, spawner SpawnTimer, live LiveCounter) {
	e.w = w
	e.spawner = spawner
	e.live = live
}

func (e *Encounter) ID() uuid.UUID { return e.id }

func (e *Encounter) Phase() Phase { return e.phase }

func (e *Encounter) Kills() int { return e.kills }

// Logger is the encounter-scoped logger every system should log through.
func (e *Encounter) Logger() zerolog.Logger { return e.log }

// Start arms the first spawn. Calling it again is a no-op.
func (e *Encounter) Start() {
	if e.phase != PhaseIdle {
		return
	}
	e.arm()
}

// SetupCombat is called by the spawner once a saucer is in play.
func (e *Encounter) SetupCombat() {
	e.setPhase(PhaseCombat)
	if e.w != nil {
		e.w.Events().Push(ecs.Event{Type: ecs.EventCombatStarted, Data: e.id})
	}
}

// EnemyKilled counts the kill and arms the next spawn when the arena is empty.
func (e *Encounter) EnemyKilled() {
	e.kills++
	e.log.Info().Int("kills", e.kills).Msg("enemy killed")
	if e.live != nil && e.w != nil && e.live(e.w) > 0 {
		return
	}
	e.arm()
}

func (e *Encounter) arm() {
	e.setPhase(PhaseSpawning)
	if e.spawner != nil && e.w != nil {
		e.spawner.StartSpawnTimer(e.w)
	}
}

func (e *Encounter) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.log.Debug().Stringer("from", e.phase).Stringer("to", p).Msg("encounter phase")
	e.phase = p
}
