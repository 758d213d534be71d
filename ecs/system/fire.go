package system

import (
	"fmt"
	"math"

	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

const FireScript = "script"

// FireContext is what a fire behavior sees while its saucer shoots.
type FireContext struct {
	World     *ecs.World
	Entity    ecs.Entity
	Transform *component.Transform
	Tuning    *component.SaucerTuning

	// ShotIndex counts shots already fired in this Shooting episode.
	ShotIndex int

	Player      common.Vec3
	PlayerFound bool

	spawn func(heading float64) error
	fired int
}

// SpawnShot fires one projectile from the saucer's position.
func (c *FireContext) SpawnShot(heading float64) error {
	if c == nil || c.spawn == nil {
		return nil
	}
	if err := c.spawn(common.NormalizeHeading(heading)); err != nil {
		return err
	}
	c.fired++
	return nil
}

func (c *FireContext) Position() common.Vec3 {
	return common.Vec3{X: c.Transform.X, Y: c.Transform.Y, Z: c.Transform.Z}
}

// AimHeading faces the player, or keeps the current heading with no player.
func (c *FireContext) AimHeading() float64 {
	if !c.PlayerFound {
		return c.Transform.RotationY
	}
	return common.HeadingTowards(c.Transform.X, c.Transform.Z, c.Player.X, c.Player.Z)
}

// ShotsLeft is how many shots of the burst remain after this one.
func (c *FireContext) ShotsLeft() int {
	left := c.Tuning.ShotsToFire - 1 - c.ShotIndex
	if left < 0 {
		return 0
	}
	return left
}

type FireBehavior func(ctx *FireContext) error

var fireRegistry = map[string]FireBehavior{
	"forward": func(ctx *FireContext) error {
		return ctx.SpawnShot(ctx.Transform.RotationY)
	},
	"aimed": func(ctx *FireContext) error {
		ctx.Transform.RotationY = ctx.AimHeading()
		return ctx.SpawnShot(ctx.Transform.RotationY)
	},
	"spread": func(ctx *FireContext) error {
		count := ctx.Tuning.SpreadCount
		if count <= 0 {
			count = 3
		}
		arc := ctx.Tuning.SpreadArcDegrees
		if arc <= 0 {
			arc = 45
		}
		ctx.Transform.RotationY = ctx.AimHeading()
		for _, h := range spreadHeadings(ctx.Transform.RotationY, count, arc*math.Pi/180) {
			if err := ctx.SpawnShot(h); err != nil {
				return err
			}
		}
		return nil
	},
}

// spreadHeadings spaces count headings evenly across arc, centred on aim.
func spreadHeadings(aim float64, count int, arc float64) []float64 {
	if count == 1 {
		return []float64{aim}
	}
	out := make([]float64, count)
	step := arc / float64(count-1)
	for i := range out {
		out[i] = aim - arc/2 + float64(i)*step
	}
	return out
}

// ValidateFire checks that a tuning names a fire behavior that exists.
func ValidateFire(t component.SaucerTuning) error {
	switch {
	case t.Fire == "":
		return fmt.Errorf("saucer %s: %w", t.Type, ErrNoFireBehavior)
	case t.Fire == FireScript:
		if t.FireScript == "" {
			return fmt.Errorf("saucer %s: script fire without a script: %w", t.Type, ErrNoFireBehavior)
		}
		return nil
	}
	if _, ok := fireRegistry[t.Fire]; !ok {
		return fmt.Errorf("saucer %s: %q: %w", t.Type, t.Fire, ErrUnknownFireBehavior)
	}
	return nil
}
