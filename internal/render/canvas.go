package render

import (
	"image"
	"image/color"
	"math"

	"github.com/evroute/appicon/internal/render/layout"
	"github.com/golang/freetype/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ellipseSegments is the number of quadratic arcs approximating an ellipse.
// At 16 the radial error stays under 0.02% of the radius.
const ellipseSegments = 16

// Canvas is an in-memory RGBA raster implementing Drawer.
type Canvas struct {
	img  *image.RGBA
	rast *raster.Rasterizer
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: raster.NewRasterizer(width, height),
	}
}

// Image returns the backing buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	rect = layout.Normalize(rect).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	xdraw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, xdraw.Src)
}

func (c *Canvas) FillEllipse(bounds image.Rectangle, col color.Color) {
	bounds = layout.Normalize(bounds)
	if bounds.Empty() || !bounds.Overlaps(c.img.Bounds()) {
		return
	}
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	rx := float64(bounds.Dx()) / 2
	ry := float64(bounds.Dy()) / 2

	step := 2 * math.Pi / ellipseSegments
	// Control points sit on the tangent intersection, outside the curve.
	k := 1 / math.Cos(step/2)

	c.rast.Clear()
	start := pt26_6(cx+rx, cy)
	c.rast.Start(start)
	for i := 1; i <= ellipseSegments; i++ {
		mid := (float64(i) - 0.5) * step
		end := float64(i) * step
		ctrl := pt26_6(cx+rx*k*math.Cos(mid), cy+ry*k*math.Sin(mid))
		if i == ellipseSegments {
			c.rast.Add2(ctrl, start)
			break
		}
		c.rast.Add2(ctrl, pt26_6(cx+rx*math.Cos(end), cy+ry*math.Sin(end)))
	}
	c.paint(col)
}

func (c *Canvas) FillPolygon(points []image.Point, col color.Color) {
	if len(points) < 3 || !layout.Bounds(points).Overlaps(c.img.Bounds()) {
		return
	}
	c.rast.Clear()
	c.rast.UseNonZeroWinding = true
	start := pixelCenter(points[0])
	c.rast.Start(start)
	for _, p := range points[1:] {
		c.rast.Add1(pixelCenter(p))
	}
	c.rast.Add1(start)
	c.paint(col)
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.face(style)
	ink, advance := font.BoundString(face, text)
	return TextMetrics{Ink: ink, Advance: advance}
}

func (c *Canvas) DrawText(text string, dot fixed.Point26_6, style TextStyle) {
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color),
		Face: c.face(style),
		Dot:  dot,
	}
	drawer.DrawString(text)
}

// face returns the style's face, or basicfont for a zero style.
func (c *Canvas) face(style TextStyle) font.Face {
	if style.Face != nil {
		return style.Face
	}
	return basicfont.Face7x13
}

func (c *Canvas) paint(col color.Color) {
	painter := raster.NewRGBAPainter(c.img)
	painter.SetColor(col)
	c.rast.Rasterize(painter)
	c.rast.Clear()
	c.rast.UseNonZeroWinding = false
}

func pt26_6(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}

func pixelCenter(p image.Point) fixed.Point26_6 {
	return pt26_6(float64(p.X)+0.5, float64(p.Y)+0.5)
}
