package encounter

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/config"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/ecs/entity"
	"github.com/milk9111/encounter/ecs/system"
	"github.com/milk9111/encounter/obj"
	"github.com/milk9111/encounter/prefabs"
	"github.com/milk9111/encounter/sound"
	"github.com/rs/zerolog"
)

// Session is a ready-to-run arena: a world with the player at the origin, a
// scattered obelisk field and every enemy system registered in frame order.
type Session struct {
	Config    config.Config
	World     *ecs.World
	Rand      *common.Rand
	Obelisks  *obj.ObeliskField
	Grid      *obj.Grid
	Scene     *obj.Scene
	Catalog   *prefabs.Catalog
	Saucers   *system.SaucerSystem
	Spawner   *system.SpawnSystem
	Encounter *Encounter
	Player    ecs.Entity

	watcher *prefabs.Watcher
	log     zerolog.Logger
}

// NewSession wires a session from cfg. A nil sounds sink logs cues instead
// of playing them.
func NewSession(cfg config.Config, sounds system.Sounds, log zerolog.Logger) (*Session, error) {
	enc := New(log)
	log = enc.Logger()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	prefabs.SetDir(cfg.Prefabs.Dir)
	catalog, err := prefabs.LoadValidatedCatalog(system.ValidateType)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	w := ecs.NewWorld()
	rng := common.NewRand(seed)

	player, err := entity.NewPlayer(w, common.Vec3{Y: cfg.CameraHeight})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	field := obj.ScatterObelisks(rng, cfg.Arena.ObeliskCount, cfg.Arena.ObeliskRadius, cfg.Arena.Size, cp.Vector{}, cfg.Arena.CellSize*2)
	grid := obj.NewGrid(w, field, rng, cfg.Arena.Size, cfg.Arena.CellSize)
	scene := obj.NewScene()

	if sounds == nil {
		sounds = sound.NewLog(log)
	}

	deps := system.Collaborators{
		Scene:     scene,
		Locator:   grid,
		Obstacles: field,
		Shots: entity.Shots{
			Speed:      cfg.Shot.Speed,
			LifetimeMs: cfg.Shot.LifetimeMs,
			Radius:     cfg.Shot.Radius,
		},
		Sounds: sounds,
		Combat: enc,
		Rand:   rng,
	}

	saucers := system.NewSaucerSystem(deps, log)
	spawner := system.NewSpawnSystem(deps, catalog, saucers, system.SpawnConfig{
		DelayMs:      cfg.Spawn.DelayMs,
		MaxDistance:  cfg.Spawn.DistanceMax,
		CameraHeight: cfg.CameraHeight,
	}, log)
	enc.Bind(w, spawner, LiveSaucers)

	s := &Session{
		Config:    cfg,
		World:     w,
		Rand:      rng,
		Obelisks:  field,
		Grid:      grid,
		Scene:     scene,
		Catalog:   catalog,
		Saucers:   saucers,
		Spawner:   spawner,
		Encounter: enc,
		Player:    player,
		log:       log,
	}

	if cfg.Prefabs.Watch && cfg.Prefabs.Dir != "" {
		dir := cfg.Prefabs.Dir
		watcher, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("prefab watch disabled")
		} else {
			s.watcher = watcher
			w.AddSystem(system.NewHotReloadSystem(watcher, catalog, saucers, log))
		}
	}

	w.AddSystem(spawner)
	w.AddSystem(saucers)
	w.AddSystem(system.NewShotSystem(scene, field))
	w.AddSystem(system.NewTTLSystem(scene))

	log.Info().Int64("seed", seed).Int("obelisks", len(field.Obelisks())).Strs("spawn_table", catalog.Table()).Msg("session ready")
	return s, nil
}

// Start begins the encounter.
func (s *Session) Start() {
	s.Encounter.Start()
}

// Update advances the session by deltaMs. The first system error ends the
// frame and is returned.
func (s *Session) Update(deltaMs float64) error {
	if err := s.World.Update(deltaMs); err != nil {
		return err
	}
	s.Scene.Prune(s.World)
	return nil
}

// DestroyNearest kills the live saucer closest to the player, as if the
// player had shot it.
func (s *Session) DestroyNearest() bool {
	player, ok := system.PlayerPosition(s.World)
	if !ok {
		return false
	}

	var (
		nearest ecs.Entity
		best    = math.Inf(1)
	)
	ecs.ForEach2(s.World, component.SaucerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.Saucer, tf *component.Transform) {
		if !sc.Alive {
			return
		}
		if d := common.DistanceXZ(player, common.Vec3{X: tf.X, Z: tf.Z}); d < best {
			best = d
			nearest = e
		}
	})
	if !nearest.Valid() {
		return false
	}
	return s.Saucers.Destroyed(s.World, nearest)
}

func (s *Session) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

// LiveSaucers counts saucers that are alive in w.
func LiveSaucers(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.SaucerComponent.Kind(), func(_ ecs.Entity, sc *component.Saucer) {
		if sc.Alive {
			n++
		}
	})
	return n
}
