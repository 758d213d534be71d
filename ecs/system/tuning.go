package system

import (
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/prefabs"
)

const (
	DefaultRadius        = 40.0
	DefaultMoveSpeed     = 0.8
	DefaultMoveTimeMinMs = 1000
	DefaultMoveTimeMaxMs = 5000
	DefaultWaitTimeMinMs = 1000
	DefaultWaitTimeMaxMs = 2000
	DefaultShotInterval  = 800.0
	DefaultInterruptOdds = 50
)

// TuningFromType turns a saucer prefab into its capability record, filling
// zero fields with the classic saucer values. Types that cannot shoot are
// rejected.
func TuningFromType(t *prefabs.SaucerType) (component.SaucerTuning, error) {
	sp := t.Saucer
	tuning := component.SaucerTuning{
		Type:             t.Name,
		Radius:           orFloat(sp.Radius, DefaultRadius),
		MoveSpeed:        orFloat(sp.MoveSpeed, DefaultMoveSpeed),
		MoveTimeMinMs:    orInt(sp.MoveTimeMs.Min, DefaultMoveTimeMinMs),
		MoveTimeMaxMs:    orInt(sp.MoveTimeMs.Max, DefaultMoveTimeMaxMs),
		WaitTimeMinMs:    orInt(sp.WaitTimeMs.Min, DefaultWaitTimeMinMs),
		WaitTimeMaxMs:    orInt(sp.WaitTimeMs.Max, DefaultWaitTimeMaxMs),
		ShotWindupMs:     sp.ShotWindupMs,
		ShotsToFire:      orInt(sp.ShotsToFire, 1),
		ShotIntervalMs:   orFloat(sp.ShotIntervalMs, DefaultShotInterval),
		InterruptOdds:    orInt(sp.InterruptOdds, DefaultInterruptOdds),
		RadarType:        t.Radar.Type,
		Fire:             t.Fire.Behavior,
		SpreadCount:      t.Fire.Count,
		SpreadArcDegrees: t.Fire.ArcDegrees,
		FireScript:       t.Fire.Script,
		MaxActive:        t.Spawn.MaxActive,
	}
	if tuning.RadarType == "" {
		tuning.RadarType = component.RadarEnemy
	}
	if tuning.ShotWindupMs < 0 {
		tuning.ShotWindupMs = 0
	}
	if err := ValidateFire(tuning); err != nil {
		return component.SaucerTuning{}, err
	}
	return tuning, nil
}

// ValidateType is the catalog check for saucer prefabs: the type must build
// a tuning and its fire script, if any, must compile. Unimplemented types
// are never spawned and pass as is.
func ValidateType(t *prefabs.SaucerType) error {
	if t.Spawn.Unimplemented {
		return nil
	}
	tuning, err := TuningFromType(t)
	if err != nil {
		return err
	}
	if tuning.Fire == FireScript {
		if _, err := newFireScripts().get(tuning.FireScript); err != nil {
			return err
		}
	}
	return nil
}

// UFOTuning is the single-shot, no-windup saucer used when no prefab is at
// hand.
func UFOTuning() component.SaucerTuning {
	return component.SaucerTuning{
		Type:           "ufo",
		Radius:         DefaultRadius,
		MoveSpeed:      DefaultMoveSpeed,
		MoveTimeMinMs:  DefaultMoveTimeMinMs,
		MoveTimeMaxMs:  DefaultMoveTimeMaxMs,
		WaitTimeMinMs:  DefaultWaitTimeMinMs,
		WaitTimeMaxMs:  DefaultWaitTimeMaxMs,
		ShotsToFire:    1,
		ShotIntervalMs: DefaultShotInterval,
		InterruptOdds:  DefaultInterruptOdds,
		RadarType:      component.RadarEnemy,
		Fire:           "aimed",
		MaxActive:      1,
	}
}

func orFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
