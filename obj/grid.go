package obj

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
)

var ErrNoSpawnPoint = errors.New("grid: no free cell within range of the player")

// Grid divides the arena into square cells and hands out free cell centres
// for spawning.
type Grid struct {
	world     *ecs.World
	obelisks  *ObeliskField
	rng       *common.Rand
	arenaSize float64
	cellSize  float64
}

func NewGrid(w *ecs.World, obelisks *ObeliskField, rng *common.Rand, arenaSize, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = common.ObeliskRadius * 2
	}
	return &Grid{
		world:     w,
		obelisks:  obelisks,
		rng:       rng,
		arenaSize: arenaSize,
		cellSize:  cellSize,
	}
}

// PlayerPosition returns the tagged player's position, or the arena centre
// when there is no player.
func (g *Grid) PlayerPosition() common.Vec3 {
	e, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	t, ok := ecs.Get(g.world, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

// RandomLocationCloseToPlayer picks a random free cell centre within
// maxDistance of the player. The player's own cell is never returned.
func (g *Grid) RandomLocationCloseToPlayer(maxDistance float64) (common.Vec3, error) {
	player := g.PlayerPosition()
	cells := g.candidates(player, maxDistance)
	if len(cells) == 0 {
		return common.Vec3{}, ErrNoSpawnPoint
	}
	return cells[g.rng.Intn(len(cells))], nil
}

func (g *Grid) candidates(player common.Vec3, maxDistance float64) []common.Vec3 {
	n := int(math.Floor(g.arenaSize / g.cellSize))
	if n <= 0 {
		return nil
	}
	origin := -g.arenaSize / 2
	half := g.cellSize / 2

	var out []common.Vec3
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := common.Vec3{
				X: origin + float64(col)*g.cellSize + half,
				Z: origin + float64(row)*g.cellSize + half,
			}
			d := common.DistanceXZ(c, player)
			if d > maxDistance || d < g.cellSize {
				continue
			}
			if g.obelisks.IsCloseToAnObelisk(cp.Vector{X: c.X, Y: c.Z}, half) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}
