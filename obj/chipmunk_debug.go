package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
)

// View maps ground-plane coordinates onto the screen.
type View struct {
	CenterX float64
	CenterZ float64
	Scale   float64
	Width   float64
	Height  float64
}

// Project converts a ground-plane point to screen space.
func (v View) Project(x, z float64) (float64, float64) {
	return (x-v.CenterX)*v.Scale + v.Width/2, (z-v.CenterZ)*v.Scale + v.Height/2
}

// DebugDraw renders the obelisk shapes through chipmunk's debug drawer.
func (f *ObeliskField) DebugDraw(screen *ebiten.Image, view View) {
	if f == nil || f.space == nil || screen == nil {
		return
	}
	cp.DrawSpace(f.space, &chipmunkDrawer{screen: screen, view: view})
}

type chipmunkDrawer struct {
	screen *ebiten.Image
	view   View
}

func (d *chipmunkDrawer) project(p cp.Vector) cp.Vector {
	x, y := d.view.Project(p.X, p.Y)
	return cp.Vector{X: x, Y: y}
}

func (d *chipmunkDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(outline)
	center := d.project(pos)
	r := radius * d.view.Scale
	steps := 20
	prev := cp.Vector{X: center.X + r, Y: center.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: center.X + math.Cos(th)*r, Y: center.Y + math.Sin(th)*r}
		ebitenutil.DrawLine(d.screen, prev.X, prev.Y, cur.X, cur.Y, c)
		prev = cur
	}
}

func (d *chipmunkDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	pa, pb := d.project(a), d.project(b)
	ebitenutil.DrawLine(d.screen, pa.X, pa.Y, pb.X, pb.Y, fcolorToRGBA(fill))
}

func (d *chipmunkDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawSegment(a, b, outline, data)
}

func (d *chipmunkDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil || count == 0 {
		return
	}
	for i := 0; i < count; i++ {
		d.DrawSegment(verts[i], verts[(i+1)%count], outline, data)
	}
}

func (d *chipmunkDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(fill)
	p := d.project(pos)
	l := size / 2
	ebitenutil.DrawLine(d.screen, p.X-l, p.Y, p.X+l, p.Y, c)
	ebitenutil.DrawLine(d.screen, p.X, p.Y-l, p.X, p.Y+l, c)
}

func (d *chipmunkDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *chipmunkDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *chipmunkDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *chipmunkDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *chipmunkDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *chipmunkDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
