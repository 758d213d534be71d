package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/ecs"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/milk9111/encounter/encounter"
	"github.com/milk9111/encounter/obj"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{0x0b, 0x0e, 0x14, 0xff}
	colorPlayer     = color.RGBA{0x4c, 0xd1, 0x37, 0xff}
	colorShot       = color.RGBA{0xff, 0xe0, 0x66, 0xff}
	colorHUD        = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
)

var stateColors = map[component.SaucerState]color.RGBA{
	component.StateMoving:     {0x5a, 0xa9, 0xe6, 0xff},
	component.StateWaiting:    {0x9a, 0x9a, 0xb0, 0xff},
	component.StateShotWindup: {0xff, 0x9f, 0x1c, 0xff},
	component.StateShooting:   {0xe6, 0x39, 0x46, 0xff},
}

// Game hosts a session in a top-down debug view.
type Game struct {
	frames int

	session *encounter.Session
	view    obj.View
	face    ebtext.Face
	log     zerolog.Logger

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(session *encounter.Session, log zerolog.Logger) *Game {
	g := &Game{
		session: session,
		view: obj.View{
			Scale:  float64(common.BaseHeight) / session.Config.Arena.Size,
			Width:  common.BaseWidth,
			Height: common.BaseHeight,
		},
		face: ebtext.NewGoXFace(basicfont.Face7x13),
		log:  log,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if !g.session.DestroyNearest() {
			g.log.Debug().Msg("no saucer to destroy")
		}
	}

	return g.session.Update(common.FrameMillis)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w := g.session.World

	g.session.Obelisks.DebugDraw(screen, g.view)

	ecs.ForEach2(w, component.ShotComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, shot *component.Shot, tf *component.Transform) {
		x, y := g.view.Project(tf.X, tf.Z)
		vector.FillCircle(screen, float32(x), float32(y), float32(max(shot.Radius*g.view.Scale, 1.5)), colorShot, true)
	})

	ecs.ForEach3(w, component.SaucerComponent.Kind(), component.SaucerTuningComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, sc *component.Saucer, tn *component.SaucerTuning, tf *component.Transform) {
			if !sc.Alive {
				return
			}
			g.drawActor(screen, tf, tn.Radius, stateColors[sc.State])
		})

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if tf, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			g.drawActor(screen, tf, common.ObeliskRadius/2, colorPlayer)
		}
	}

	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawActor(screen *ebiten.Image, tf *component.Transform, radius float64, clr color.RGBA) {
	x, y := g.view.Project(tf.X, tf.Z)
	r := max(radius*g.view.Scale, 3)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1.5, clr, true)

	dx, dz := common.Forward(tf.RotationY)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+dx*r*1.8), float32(y+dz*r*1.8), 1, clr, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	enc := g.session.Encounter
	lines := []string{
		fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()),
		fmt.Sprintf("Encounter %s  phase: %s  kills: %d", enc.ID().String()[:8], enc.Phase(), enc.Kills()),
		fmt.Sprintf("Saucers: %d  Shots: %d", encounter.LiveSaucers(g.session.World), ecs.Count(g.session.World, component.ShotComponent.Kind())),
		"K: destroy nearest saucer    Esc: pause",
	}

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		op.ColorScale.ScaleWithColor(colorHUD)
		ebtext.Draw(screen, line, g.face, op)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
