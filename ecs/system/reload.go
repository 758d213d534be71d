package system

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/prefabs"
	"github.com/rs/zerolog"
)

// ChangeSource reports edited prefab files without blocking.
type ChangeSource interface {
	Poll() []string
}

// PrefabCatalog is a spawn table that can re-read changed files.
type PrefabCatalog interface {
	SpawnTable
	Reload(path string) ([]string, error)
}

// HotReloadSystem pushes edited saucer prefabs into live saucers. Only the
// tuning is replaced; state and countdowns carry on.
type HotReloadSystem struct {
	changes ChangeSource
	catalog PrefabCatalog
	saucers *SaucerSystem
	log     zerolog.Logger
}

func NewHotReloadSystem(changes ChangeSource, catalog PrefabCatalog, saucers *SaucerSystem, log zerolog.Logger) *HotReloadSystem {
	return &HotReloadSystem{
		changes: changes,
		catalog: catalog,
		saucers: saucers,
		log:     log.With().Str("system", "hot_reload").Logger(),
	}
}

func (s *HotReloadSystem) Update(w *ecs.World) error {
	if w == nil || s.changes == nil {
		return nil
	}
	for _, path := range s.changes.Poll() {
		s.apply(w, path)
	}
	return nil
}

// A broken edit is logged and ignored so a typo does not end the session.
// The catalog and script cache keep their previous versions.
func (s *HotReloadSystem) apply(w *ecs.World, path string) {
	if strings.EqualFold(filepath.Ext(path), ".tengo") {
		if err := s.saucers.ReloadScript(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("fire script rejected")
			return
		}
	}

	names, err := s.catalog.Reload(path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("prefab rejected")
		return
	}

	for _, name := range names {
		t, ok := s.catalog.Lookup(name)
		if !ok {
			continue
		}
		if t.Spawn.Unimplemented {
			continue
		}
		tuning, err := TuningFromType(t)
		if err != nil {
			s.log.Warn().Err(err).Str("type", name).Msg("prefab rejected")
			continue
		}
		n := Retune(w, tuning)
		s.log.Info().Str("type", name).Int("live", n).Str("path", path).Msg("prefab reloaded")
	}
}

// Retune replaces the tuning of every saucer of tuning.Type and returns how
// many were updated.
func Retune(w *ecs.World, tuning component.SaucerTuning) int {
	n := 0
	ecs.ForEach2(w, component.SaucerComponent.Kind(), component.SaucerTuningComponent.Kind(), func(_ ecs.Entity, sc *component.Saucer, tn *component.SaucerTuning) {
		if sc.Type != tuning.Type {
			return
		}
		*tn = tuning
		n++
	})
	return n
}

var _ PrefabCatalog = (*prefabs.Catalog)(nil)
