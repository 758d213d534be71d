package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// RangeSpec is an inclusive millisecond window.
type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type SaucerComponentSpec struct {
	Radius         float64   `yaml:"radius"`
	MoveSpeed      float64   `yaml:"move_speed"`
	MoveTimeMs     RangeSpec `yaml:"move_time_ms"`
	WaitTimeMs     RangeSpec `yaml:"wait_time_ms"`
	ShotWindupMs   float64   `yaml:"shot_windup_ms"`
	ShotsToFire    int       `yaml:"shots_to_fire"`
	ShotIntervalMs float64   `yaml:"shot_interval_ms"`
	InterruptOdds  int       `yaml:"interrupt_odds"`
}

type FireComponentSpec struct {
	Behavior   string  `yaml:"behavior"`
	Count      int     `yaml:"count"`
	ArcDegrees float64 `yaml:"arc_degrees"`
	Script     string  `yaml:"script"`
}

type SpawnComponentSpec struct {
	MaxActive     int  `yaml:"max_active"`
	Unimplemented bool `yaml:"unimplemented"`
}

type RadarBlipComponentSpec struct {
	Type string `yaml:"type"`
}
