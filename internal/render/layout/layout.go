package layout

import (
	"image"
	"math"
)

// ReferenceSize is the canvas edge length that artwork constants are authored for.
const ReferenceSize = 1024

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Scale maps a length authored at ReferenceSize onto a canvas of edge sizePx,
// rounding to the nearest pixel. At ReferenceSize it returns refPx unchanged.
func Scale(refPx, sizePx int) int {
	if sizePx == ReferenceSize {
		return refPx
	}
	return int(math.Round(float64(refPx) * float64(sizePx) / ReferenceSize))
}

// ScaleFloat is Scale without rounding, for font sizes.
func ScaleFloat(ref float64, sizePx int) float64 {
	return ref * float64(sizePx) / ReferenceSize
}

// Center returns the integer center of a square canvas of edge sizePx.
func Center(sizePx int) image.Point {
	return image.Pt(sizePx/2, sizePx/2)
}

// OffsetsFrom scales each offset to sizePx and translates it by origin.
func OffsetsFrom(origin image.Point, offsets []image.Point, sizePx int) []image.Point {
	out := make([]image.Point, len(offsets))
	for i, off := range offsets {
		out[i] = origin.Add(image.Pt(Scale(off.X, sizePx), Scale(off.Y, sizePx)))
	}
	return out
}

// Bounds returns the smallest rectangle containing every point, with Max
// exclusive. An empty slice yields the zero rectangle.
func Bounds(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	rect := image.Rectangle{Min: points[0], Max: points[0].Add(image.Pt(1, 1))}
	for _, p := range points[1:] {
		rect = rect.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return rect
}
