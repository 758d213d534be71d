package prefabs

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// SaucerType is one decoded saucer prefab.
type SaucerType struct {
	Name   string
	File   string
	Saucer SaucerComponentSpec
	Fire   FireComponentSpec
	Spawn  SpawnComponentSpec
	Radar  RadarBlipComponentSpec
}

func LoadSaucerType(filename string) (*SaucerType, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return nil, err
	}
	name := spec.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	out := &SaucerType{Name: name, File: cleanPrefabPath(filename)}
	if out.Saucer, err = DecodeComponentSpec[SaucerComponentSpec](spec.Components["saucer"]); err != nil {
		return nil, fmt.Errorf("prefabs: %s: saucer: %w", filename, err)
	}
	if out.Fire, err = DecodeComponentSpec[FireComponentSpec](spec.Components["fire"]); err != nil {
		return nil, fmt.Errorf("prefabs: %s: fire: %w", filename, err)
	}
	if out.Spawn, err = DecodeComponentSpec[SpawnComponentSpec](spec.Components["spawn"]); err != nil {
		return nil, fmt.Errorf("prefabs: %s: spawn: %w", filename, err)
	}
	if out.Radar, err = DecodeComponentSpec[RadarBlipComponentSpec](spec.Components["radar_blip"]); err != nil {
		return nil, fmt.Errorf("prefabs: %s: radar_blip: %w", filename, err)
	}
	return out, nil
}

// Validator vets a decoded saucer type before the catalog accepts it.
type Validator func(*SaucerType) error

// ErrNameMismatch rejects a prefab whose name differs from its file and
// spawn table entry.
var ErrNameMismatch = errors.New("prefabs: type name does not match its file")

// Catalog holds the spawn table and every saucer type it names, keyed by
// table entry. A table entry without a prefab file stays in the table but
// has no type, so lookups for it fail.
type Catalog struct {
	table    []string
	types    map[string]*SaucerType
	validate Validator
}

func LoadCatalog() (*Catalog, error) {
	return LoadValidatedCatalog(nil)
}

// LoadValidatedCatalog loads the catalog and runs validate on every type,
// both now and on each reload.
func LoadValidatedCatalog(validate Validator) (*Catalog, error) {
	c := &Catalog{types: make(map[string]*SaucerType), validate: validate}
	if err := c.reloadTable(false); err != nil {
		return nil, err
	}
	return c, nil
}

// Table returns the spawn table entries.
func (c *Catalog) Table() []string {
	return c.table
}

func (c *Catalog) Lookup(name string) (*SaucerType, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Names returns the loaded type names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.types))
	for name := range c.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Reload re-reads whatever a changed prefab file affects and returns the
// names of the saucer types whose definition may have changed. An edit that
// fails to load or validate is returned as an error and the previous
// definitions stay in place.
func (c *Catalog) Reload(path string) ([]string, error) {
	base := filepath.Base(path)
	switch {
	case base == SpawnTableFile:
		if err := c.reloadTable(true); err != nil {
			return nil, err
		}
		return c.Names(), nil
	case isScriptFile(base):
		var affected []string
		for _, name := range c.Names() {
			if filepath.Base(c.types[name].Fire.Script) == base {
				affected = append(affected, name)
			}
		}
		return affected, nil
	case isSpecFile(base):
		key := strings.TrimSuffix(base, ".yaml")
		if key == base || !slices.Contains(c.table, key) {
			return nil, nil
		}
		t, err := c.loadType(key)
		if err != nil {
			return nil, err
		}
		c.types[key] = t
		return []string{key}, nil
	}
	return nil, nil
}

// loadType reads and vets the prefab for a spawn table entry.
func (c *Catalog) loadType(key string) (*SaucerType, error) {
	file := key + ".yaml"
	t, err := LoadSaucerType(file)
	if err != nil {
		return nil, err
	}
	if t.Name != key {
		return nil, fmt.Errorf("prefabs: %s: name %q: %w", file, t.Name, ErrNameMismatch)
	}
	if c.validate != nil {
		if err := c.validate(t); err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", file, err)
		}
	}
	return t, nil
}

// reloadTable rebuilds the table and every type it names. With strict set,
// an entry that was not listed before must come with a prefab.
func (c *Catalog) reloadTable(strict bool) error {
	table, err := LoadSpawnTable()
	if err != nil {
		return err
	}
	types := make(map[string]*SaucerType, len(table.Entries))
	for _, name := range table.Entries {
		if _, ok := types[name]; ok {
			continue
		}
		t, err := c.loadType(name)
		if errors.Is(err, fs.ErrNotExist) {
			if strict && !slices.Contains(c.table, name) {
				return fmt.Errorf("prefabs: %s: %q has no prefab: %w", SpawnTableFile, name, err)
			}
			continue
		}
		if err != nil {
			return err
		}
		types[name] = t
	}
	c.table = table.Entries
	c.types = types
	return nil
}
