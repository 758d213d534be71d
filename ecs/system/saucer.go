package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/rs/zerolog"
)

// SaucerSystem runs the move / wait / windup / shoot machine for every live
// saucer. Behavior is shared; each saucer's state lives in its components.
type SaucerSystem struct {
	deps    Collaborators
	scripts *fireScripts
	log     zerolog.Logger
}

func NewSaucerSystem(deps Collaborators, log zerolog.Logger) *SaucerSystem {
	return &SaucerSystem{
		deps:    deps,
		scripts: newFireScripts(),
		log:     log.With().Str("system", "saucer").Logger(),
	}
}

// actor is one saucer's components for the duration of a call.
type actor struct {
	e      ecs.Entity
	saucer *component.Saucer
	tuning *component.SaucerTuning
	tf     *component.Transform
}

func (s *SaucerSystem) actor(w *ecs.World, e ecs.Entity) (*actor, bool) {
	sc, ok := ecs.Get(w, e, component.SaucerComponent.Kind())
	if !ok {
		return nil, false
	}
	tn, ok := ecs.Get(w, e, component.SaucerTuningComponent.Kind())
	if !ok {
		return nil, false
	}
	tf, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, false
	}
	return &actor{e: e, saucer: sc, tuning: tn, tf: tf}, true
}

func (s *SaucerSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	dt := w.Delta()

	var err error
	ecs.ForEach3(w, component.SaucerComponent.Kind(), component.SaucerTuningComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, sc *component.Saucer, tn *component.SaucerTuning, tf *component.Transform) {
			if err != nil || !sc.Alive {
				return
			}
			err = s.step(w, &actor{e: e, saucer: sc, tuning: tn, tf: tf}, dt)
		})
	return err
}

func (s *SaucerSystem) step(w *ecs.World, a *actor, dt float64) error {
	switch a.saucer.State {
	case component.StateWaiting:
		return s.updateWaiting(w, a, dt)
	case component.StateMoving:
		s.updateMoving(w, a, dt)
		return nil
	case component.StateShotWindup:
		return s.updateShotWindup(w, a, dt)
	case component.StateShooting:
		return s.updateShooting(w, a, dt)
	default:
		s.log.Error().Stringer("entity", a.e).Str("type", a.saucer.Type).Uint8("state", uint8(a.saucer.State)).Msg("unknown saucer state")
		return fmt.Errorf("saucer %s (%s): state %d: %w", a.e, a.saucer.Type, a.saucer.State, ErrUnknownState)
	}
}

func (s *SaucerSystem) enter(w *ecs.World, a *actor, state component.SaucerState) {
	a.saucer.State = state
	w.Events().Push(ecs.Event{Type: ecs.EventSaucerState, Data: ecs.ActorEvent{Entity: a.e, Type: a.saucer.Type, Detail: state.String()}})
}

// SetupMoving enters Moving with a fresh duration and a random heading.
func (s *SaucerSystem) SetupMoving(w *ecs.World, e ecs.Entity) bool {
	a, ok := s.actor(w, e)
	if !ok {
		return false
	}
	s.setupMoving(w, a)
	return true
}

func (s *SaucerSystem) setupMoving(w *ecs.World, a *actor) {
	a.saucer.MovingCountdownMs = float64(s.deps.Rand.Between(a.tuning.MoveTimeMinMs, a.tuning.MoveTimeMaxMs))
	a.tf.RotationY = s.deps.Rand.Direction()
	s.log.Debug().Stringer("entity", a.e).Float64("countdown_ms", a.saucer.MovingCountdownMs).Float64("heading", a.tf.RotationY).Msg("moving")
	s.enter(w, a, component.StateMoving)
}

// SetupWaiting enters Waiting with a fresh duration.
func (s *SaucerSystem) SetupWaiting(w *ecs.World, e ecs.Entity) bool {
	a, ok := s.actor(w, e)
	if !ok {
		return false
	}
	s.setupWaiting(w, a)
	return true
}

func (s *SaucerSystem) setupWaiting(w *ecs.World, a *actor) {
	a.saucer.WaitingCountdownMs = float64(s.deps.Rand.Between(a.tuning.WaitTimeMinMs, a.tuning.WaitTimeMaxMs))
	s.log.Debug().Stringer("entity", a.e).Float64("countdown_ms", a.saucer.WaitingCountdownMs).Msg("waiting")
	s.enter(w, a, component.StateWaiting)
}

// SetupShotWindup enters ShotWindup and telegraphs the attack.
func (s *SaucerSystem) SetupShotWindup(w *ecs.World, e ecs.Entity) bool {
	a, ok := s.actor(w, e)
	if !ok {
		return false
	}
	s.setupShotWindup(w, a)
	return true
}

func (s *SaucerSystem) setupShotWindup(w *ecs.World, a *actor) {
	a.saucer.ShotWindupCountdownMs = a.tuning.ShotWindupMs
	s.deps.Sounds.Play(component.CueShotWindup)
	s.log.Debug().Stringer("entity", a.e).Float64("countdown_ms", a.saucer.ShotWindupCountdownMs).Msg("winding up shot")
	s.enter(w, a, component.StateShotWindup)
}

func (s *SaucerSystem) updateWaiting(w *ecs.World, a *actor, dt float64) error {
	a.saucer.WaitingCountdownMs -= dt
	if a.saucer.WaitingCountdownMs <= 0 {
		s.setupMoving(w, a)
		return nil
	}
	// One roll per tick, so the effective rate depends on the frame rate.
	odds := a.tuning.InterruptOdds
	if odds <= 0 || s.deps.Rand.Intn(odds) != 0 {
		return nil
	}
	if a.tuning.ShotWindupMs > 0 {
		s.setupShotWindup(w, a)
		return nil
	}
	return s.setupShooting(w, a)
}

func (s *SaucerSystem) updateMoving(w *ecs.World, a *actor, dt float64) {
	a.saucer.MovingCountdownMs -= dt
	if a.saucer.MovingCountdownMs <= 0 {
		s.setupWaiting(w, a)
		return
	}

	dx, dz := common.Forward(a.tf.RotationY)
	step := dt * a.tuning.MoveSpeed
	pos := cp.Vector{X: a.tf.X + dx*step, Y: a.tf.Z + dz*step}

	if obs := s.deps.Obstacles; obs != nil && obs.IsCloseToAnObelisk(pos, a.tuning.Radius) {
		if obelisk, ok := obs.CollidingObelisk(pos, a.tuning.Radius); ok {
			obs.MoveCircleOutOfStaticCircle(obelisk.Center, obelisk.Radius, &pos, a.tuning.Radius)
			s.deps.Sounds.Play(component.CueCollideObelisk)
			w.Events().Push(ecs.Event{Type: ecs.EventObeliskBump, Data: ecs.ActorEvent{Entity: a.e, Type: a.saucer.Type}})
		}
	}

	a.tf.X, a.tf.Z = pos.X, pos.Y
}

func (s *SaucerSystem) updateShotWindup(w *ecs.World, a *actor, dt float64) error {
	a.saucer.ShotWindupCountdownMs -= dt
	if a.saucer.ShotWindupCountdownMs <= 0 {
		return s.setupShooting(w, a)
	}
	return nil
}

// setupShooting fires the first shot of the burst straight away.
func (s *SaucerSystem) setupShooting(w *ecs.World, a *actor) error {
	s.log.Debug().Stringer("entity", a.e).Int("burst", a.tuning.ShotsToFire).Msg("shooting")
	if err := s.shoot(w, a, 0); err != nil {
		return err
	}

	if a.tuning.ShotsToFire > 1 {
		a.saucer.ShotsLeftToFire = a.tuning.ShotsToFire - 1
		a.saucer.ShotIntervalCountdownMs = a.tuning.ShotIntervalMs
		s.enter(w, a, component.StateShooting)
		return nil
	}
	a.saucer.ShotsLeftToFire = 0
	s.setupMoving(w, a)
	return nil
}

func (s *SaucerSystem) updateShooting(w *ecs.World, a *actor, dt float64) error {
	a.saucer.ShotIntervalCountdownMs -= dt

	if a.saucer.ShotIntervalCountdownMs <= 0 {
		if err := s.shoot(w, a, a.tuning.ShotsToFire-a.saucer.ShotsLeftToFire); err != nil {
			return err
		}
		a.saucer.ShotsLeftToFire--
		a.saucer.ShotIntervalCountdownMs = a.tuning.ShotIntervalMs
	}

	if a.saucer.ShotsLeftToFire <= 0 {
		s.setupMoving(w, a)
	}
	return nil
}

// shoot plays the shot cue and runs the type's fire behavior. Every
// projectile it creates joins the scene.
func (s *SaucerSystem) shoot(w *ecs.World, a *actor, index int) error {
	s.deps.Sounds.Play(component.CueEnemyShoot)

	player, found := PlayerPosition(w)
	ctx := &FireContext{
		World:       w,
		Entity:      a.e,
		Transform:   a.tf,
		Tuning:      a.tuning,
		ShotIndex:   index,
		Player:      player,
		PlayerFound: found,
	}
	ctx.spawn = func(heading float64) error {
		pos := common.Vec3{X: a.tf.X, Y: a.tf.Y, Z: a.tf.Z}
		shot, err := s.deps.Shots.NewInstance(w, a.e, pos, heading)
		if err != nil {
			return fmt.Errorf("saucer %s: new shot: %w", a.e, err)
		}
		s.deps.Scene.Add(shot)
		w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Data: ecs.ActorEvent{Entity: shot, Type: a.saucer.Type}})
		return nil
	}

	if a.tuning.Fire == FireScript {
		return s.scripts.Fire(ctx, a.tuning.FireScript)
	}
	fire, ok := fireRegistry[a.tuning.Fire]
	if !ok {
		return fmt.Errorf("saucer %s (%s): %q: %w", a.e, a.saucer.Type, a.tuning.Fire, ErrUnknownFireBehavior)
	}
	return fire(ctx)
}

// ReloadScript recompiles an edited fire script. On error the previous
// version keeps firing.
func (s *SaucerSystem) ReloadScript(path string) error {
	return s.scripts.Reload(path)
}

// Destroyed retires a saucer killed by an outside event. It reports false
// for handles that are not live saucers.
func (s *SaucerSystem) Destroyed(w *ecs.World, e ecs.Entity) bool {
	sc, ok := ecs.Get(w, e, component.SaucerComponent.Kind())
	if !ok || !sc.Alive {
		return false
	}
	s.deps.Sounds.Play(component.CuePlayerKilled)
	s.deps.Scene.Remove(e)
	sc.Alive = false
	typ := sc.Type
	ecs.DestroyEntity(w, e)
	s.log.Info().Stringer("entity", e).Str("type", typ).Msg("saucer destroyed")
	w.Events().Push(ecs.Event{Type: ecs.EventSaucerDestroyed, Data: ecs.ActorEvent{Entity: e, Type: typ}})
	s.deps.Combat.EnemyKilled()
	return true
}
