package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. ENCOUNTER_SPAWN_DELAY_MS.
const EnvPrefix = "ENCOUNTER"

type Config struct {
	Spawn        SpawnConfig   `mapstructure:"spawn"`
	CameraHeight float64       `mapstructure:"camera_height"`
	Seed         int64         `mapstructure:"seed"`
	Shot         ShotConfig    `mapstructure:"shot"`
	Arena        ArenaConfig   `mapstructure:"arena"`
	Prefabs      PrefabsConfig `mapstructure:"prefabs"`
	Log          LogConfig     `mapstructure:"log"`
}

type SpawnConfig struct {
	DelayMs     float64 `mapstructure:"delay_ms"`
	DistanceMax float64 `mapstructure:"distance_max"`
}

type ShotConfig struct {
	Speed      float64 `mapstructure:"speed"`
	LifetimeMs float64 `mapstructure:"lifetime_ms"`
	Radius     float64 `mapstructure:"radius"`
}

type ArenaConfig struct {
	Size          float64 `mapstructure:"size"`
	CellSize      float64 `mapstructure:"cell_size"`
	ObeliskCount  int     `mapstructure:"obelisk_count"`
	ObeliskRadius float64 `mapstructure:"obelisk_radius"`
}

type PrefabsConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("spawn.delay_ms", 2000)
	v.SetDefault("spawn.distance_max", 1500)
	v.SetDefault("camera_height", 40)
	v.SetDefault("seed", 0)

	v.SetDefault("shot.speed", 1.2)
	v.SetDefault("shot.lifetime_ms", 3000)
	v.SetDefault("shot.radius", 6)

	v.SetDefault("arena.size", 4000)
	v.SetDefault("arena.cell_size", 80)
	v.SetDefault("arena.obelisk_count", 40)
	v.SetDefault("arena.obelisk_radius", 40)

	v.SetDefault("prefabs.dir", "prefabs")
	v.SetDefault("prefabs.watch", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
}

// Load reads an optional YAML file, applies defaults and ENCOUNTER_*
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration with no file and no environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}
