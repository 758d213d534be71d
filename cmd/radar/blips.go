package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/encounter"
)

type blip struct {
	kind string
	x, z float64
}

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[string]glyph{
	component.RadarEnemy:   {'◆', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	component.RadarShot:    {'·', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	component.RadarPlayer:  {'@', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
	component.RadarObelisk: {'▲', tcell.StyleDefault.Foreground(tcell.ColorGray)},
}

func glyphFor(kind string) glyph {
	if g, ok := glyphs[kind]; ok {
		return g
	}
	return glyph{'?', tcell.StyleDefault.Foreground(tcell.ColorPurple)}
}

// collectBlips lists obelisks first so actors draw over them.
func collectBlips(s *encounter.Session) []blip {
	var out []blip
	for _, o := range s.Obelisks.Obelisks() {
		out = append(out, blip{kind: component.RadarObelisk, x: o.Center.X, z: o.Center.Y})
	}

	var players []blip
	ecs.ForEach2(s.World, component.RadarBlipComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RadarBlip, tf *component.Transform) {
		if sc, ok := ecs.Get(s.World, e, component.SaucerComponent.Kind()); ok && !sc.Alive {
			return
		}
		b := blip{kind: rb.Type, x: tf.X, z: tf.Z}
		if rb.Type == component.RadarPlayer {
			players = append(players, b)
			return
		}
		out = append(out, b)
	})
	return append(out, players...)
}

// radarView maps the square arena onto a terminal grid. Terminal cells are
// about twice as tall as wide, so columns get double resolution.
type radarView struct {
	arena      float64
	cols, rows int
}

func newRadarView(arenaSize float64, cols, rows int) radarView {
	return radarView{arena: arenaSize, cols: cols, rows: rows}
}

func (v radarView) cell(x, z float64) (col, row int, ok bool) {
	if v.arena <= 0 || v.cols <= 0 || v.rows <= 0 {
		return 0, 0, false
	}
	half := v.arena / 2
	if x < -half || x > half || z < -half || z > half {
		return 0, 0, false
	}
	span := min(v.rows, v.cols/2)
	col = int((x+half)/v.arena*float64(span*2-1)+0.5) + (v.cols-span*2)/2
	row = int((z+half)/v.arena*float64(span-1)+0.5) + (v.rows-span)/2
	return col, row, true
}
