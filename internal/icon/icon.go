// Package icon composes the EV Route app icon: a green vertical gradient, a
// white contrast disk, the "EV" label and a lightning bolt beneath it.
//
// All geometry is authored at layout.ReferenceSize and scaled proportionally.
package icon

import (
	"image"
	"image/color"

	"github.com/evroute/appicon/internal/fonts"
	"github.com/evroute/appicon/internal/render"
	"github.com/evroute/appicon/internal/render/layout"
	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
)

const (
	// Label is the text drawn on the disk.
	Label = "EV"
	// LabelPoints is the label font size at the reference canvas.
	LabelPoints = 400.0

	diskMarginPx = 150
	labelLiftPx  = 100
)

// ErrInvalidSize is returned for a non-positive canvas size.
var ErrInvalidSize = errors.New("icon size must be positive")

// boltOffsets are the bolt vertices relative to the canvas center.
var boltOffsets = []image.Point{
	{-50, 50},
	{30, 150},
	{-10, 150},
	{50, 280},
	{-30, 170},
	{10, 170},
}

// Renderer renders the icon with a fixed, already resolved font.
type Renderer struct {
	Font fonts.Handle
}

// Render draws the icon onto a fresh size×size canvas.
func (r Renderer) Render(size int) (*image.RGBA, error) {
	return Render(size, r.Font)
}

// Render draws the icon onto a fresh size×size canvas using face for the label.
func Render(size int, face fonts.Handle) (*image.RGBA, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d", size)
	}
	canvas := render.NewCanvas(size, size)
	Compose(canvas, face)
	return canvas.Image(), nil
}

// Compose draws every layer onto d, back to front.
func Compose(d render.Drawer, face fonts.Handle) {
	size, _ := d.Size()
	drawGradient(d, size)
	d.FillEllipse(DiskBounds(size), render.Disk)
	drawLabel(d, size, face)
	d.FillPolygon(BoltPoints(size), render.Brand)
}

// GradientColor returns the background color of row y.
func GradientColor(y, size int) color.RGBA {
	// (span*y)/size rather than span*(y/size): truncation depends on the order.
	step := func(span int) float64 { return float64(span*y) / float64(size) }
	return color.RGBA{
		R: channel(0 + step(20)),
		G: channel(180 - step(40)),
		B: channel(100 - step(30)),
		A: 0xFF,
	}
}

// DiskBounds returns the bounding box of the contrast disk.
func DiskBounds(size int) image.Rectangle {
	return layout.Inset(image.Rect(0, 0, size, size), layout.Scale(diskMarginPx, size))
}

// BoltPoints returns the bolt polygon in canvas coordinates.
func BoltPoints(size int) []image.Point {
	return layout.OffsetsFrom(layout.Center(size), boltOffsets, size)
}

// LabelSize returns the label font size in points for a size×size canvas.
func LabelSize(size int) float64 {
	return layout.ScaleFloat(LabelPoints, size)
}

// LabelCenter is where the center of the label's ink box is placed.
func LabelCenter(size int) image.Point {
	return layout.Center(size).Sub(image.Pt(0, layout.Scale(labelLiftPx, size)))
}

// LabelDot returns the baseline origin that puts the ink center of a run
// with metrics m on LabelCenter.
func LabelDot(m render.TextMetrics, size int) fixed.Point26_6 {
	center := LabelCenter(size)
	return fixed.P(center.X, center.Y).Sub(m.InkCenter())
}

func drawGradient(d render.Drawer, size int) {
	width, _ := d.Size()
	for y := 0; y < size; y++ {
		d.FillRect(image.Rect(0, y, width, y+1), GradientColor(y, size))
	}
}

func drawLabel(d render.Drawer, size int, face fonts.Handle) {
	style := render.TextStyle{Color: render.Brand, Face: face.Face}
	m := d.MeasureText(Label, style)
	d.DrawText(Label, LabelDot(m, size), style)
}

// channel truncates toward zero and clamps to a color channel.
func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
