package render

import "image/color"

// Palette shared by the icon artwork.
var (
	// Brand green used for the label and the bolt.
	Brand = color.RGBA{R: 0, G: 150, B: 70, A: 0xFF} // #009646

	// Contrast disk fill.
	Disk = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
