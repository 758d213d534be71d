package system

import (
	"fmt"

	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/ecs/entity"
	"github.com/milk9111/encounter/prefabs"
	"github.com/rs/zerolog"
)

// SpawnTable is the source of spawnable saucer types.
type SpawnTable interface {
	Table() []string
	Lookup(name string) (*prefabs.SaucerType, bool)
}

type SpawnConfig struct {
	DelayMs      float64
	MaxDistance  float64
	CameraHeight float64
}

// SpawnSystem decides when, where and which saucer appears. Timing is an
// elapsed-time threshold from an explicit epoch, not a recurring timer.
type SpawnSystem struct {
	deps    Collaborators
	table   SpawnTable
	saucers *SaucerSystem
	cfg     SpawnConfig
	log     zerolog.Logger

	epoch float64
	armed bool
}

func NewSpawnSystem(deps Collaborators, table SpawnTable, saucers *SaucerSystem, cfg SpawnConfig, log zerolog.Logger) *SpawnSystem {
	return &SpawnSystem{
		deps:    deps,
		table:   table,
		saucers: saucers,
		cfg:     cfg,
		log:     log.With().Str("system", "spawn").Logger(),
	}
}

// StartSpawnTimer records the current world time as the spawn epoch.
func (s *SpawnSystem) StartSpawnTimer(w *ecs.World) {
	s.epoch = w.Now()
	s.armed = true
	s.log.Debug().Float64("epoch_ms", s.epoch).Msg("spawn timer started")
}

// Armed reports whether a spawn is pending.
func (s *SpawnSystem) Armed() bool {
	return s.armed
}

func (s *SpawnSystem) Update(w *ecs.World) error {
	_, _, err := s.SpawnIfReady(w)
	return err
}

// SpawnIfReady spawns once the delay since the epoch has passed and starts
// combat. A draw that creates nothing leaves the timer armed so the next
// frame draws again.
func (s *SpawnSystem) SpawnIfReady(w *ecs.World) (ecs.Entity, bool, error) {
	if !s.armed || w.Now()-s.epoch <= s.cfg.DelayMs {
		return 0, false, nil
	}
	e, ok, err := s.Spawn(w)
	if err != nil || !ok {
		return 0, false, err
	}
	s.armed = false
	s.deps.Combat.SetupCombat()
	return e, true, nil
}

// Spawn draws a type from the spawn table and brings it to life.
func (s *SpawnSystem) Spawn(w *ecs.World) (ecs.Entity, bool, error) {
	entries := s.table.Table()
	if len(entries) == 0 {
		return 0, false, nil
	}
	name := entries[s.deps.Rand.Intn(len(entries))]

	t, ok := s.table.Lookup(name)
	if !ok {
		s.log.Error().Str("type", name).Msg("unknown spawn subtype")
		return 0, false, fmt.Errorf("spawn: %q: %w", name, ErrUnknownSubtype)
	}
	if t.Spawn.Unimplemented {
		s.log.Warn().Str("type", name).Msg("spawn subtype not implemented, skipping")
		return 0, false, nil
	}

	tuning, err := TuningFromType(t)
	if err != nil {
		return 0, false, fmt.Errorf("spawn: %w", err)
	}
	if tuning.MaxActive > 0 && ActiveCount(w, tuning.Type) >= tuning.MaxActive {
		s.log.Debug().Str("type", name).Int("max_active", tuning.MaxActive).Msg("spawn cap reached, skipping")
		return 0, false, nil
	}
	return s.spawnSaucer(w, tuning)
}

// spawnSaucer places a new saucer near the player at camera height, adds it
// to the scene and sets it moving.
func (s *SpawnSystem) spawnSaucer(w *ecs.World, tuning component.SaucerTuning) (ecs.Entity, bool, error) {
	point, err := s.deps.Locator.RandomLocationCloseToPlayer(s.cfg.MaxDistance)
	if err != nil {
		s.log.Warn().Err(err).Str("type", tuning.Type).Msg("no spawn point, skipping")
		return 0, false, nil
	}
	point.Y = s.cfg.CameraHeight

	e, err := entity.NewSaucer(w, tuning)
	if err != nil {
		return 0, false, fmt.Errorf("spawn: %w", err)
	}
	tf, hasTransform := ecs.Get(w, e, component.TransformComponent.Kind())
	sc, hasSaucer := ecs.Get(w, e, component.SaucerComponent.Kind())
	if !hasTransform || !hasSaucer {
		ecs.DestroyEntity(w, e)
		return 0, false, fmt.Errorf("spawn: saucer %s built without transform or saucer state", e)
	}
	tf.X, tf.Y, tf.Z = point.X, point.Y, point.Z

	s.deps.Scene.Add(e)
	sc.Alive = true

	s.log.Info().Stringer("entity", e).Str("type", tuning.Type).
		Float64("x", point.X).Float64("y", point.Y).Float64("z", point.Z).Msg("spawning saucer")
	w.Events().Push(ecs.Event{Type: ecs.EventSaucerSpawned, Data: ecs.ActorEvent{Entity: e, Type: tuning.Type}})

	s.saucers.SetupMoving(w, e)
	return e, true, nil
}

// ActiveCount counts live saucers of a type.
func ActiveCount(w *ecs.World, typ string) int {
	n := 0
	ecs.ForEach(w, component.SaucerComponent.Kind(), func(_ ecs.Entity, sc *component.Saucer) {
		if sc.Alive && sc.Type == typ {
			n++
		}
	})
	return n
}
