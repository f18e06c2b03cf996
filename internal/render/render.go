package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Drawer is the set of raster primitives artwork is composed from. It hides
// the pixel buffer so compositions only deal with geometry and color.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillRect(rect image.Rectangle, c color.Color)
	// FillEllipse fills the ellipse inscribed in bounds.
	FillEllipse(bounds image.Rectangle, c color.Color)
	// FillPolygon fills the closed polygon through points using the non-zero
	// winding rule. Vertices address pixel centers.
	FillPolygon(points []image.Point, c color.Color)

	MeasureText(text string, style TextStyle) TextMetrics
	// DrawText draws text with its baseline origin at dot.
	DrawText(text string, dot fixed.Point26_6, style TextStyle)
}

// TextStyle describes how to render text.
type TextStyle struct {
	Color color.Color
	Face  font.Face
}

// TextMetrics describes a text run relative to its baseline origin.
type TextMetrics struct {
	// Ink is the glyph bounding box; Min.Y is negative above the baseline.
	Ink     fixed.Rectangle26_6
	Advance fixed.Int26_6
}

// InkCenter returns the center of the ink box relative to the baseline origin.
func (m TextMetrics) InkCenter() fixed.Point26_6 {
	return fixed.Point26_6{
		X: (m.Ink.Min.X + m.Ink.Max.X) / 2,
		Y: (m.Ink.Min.Y + m.Ink.Max.Y) / 2,
	}
}
