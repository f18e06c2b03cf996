// Package fonts resolves the display face used for icon labels.
//
// Resolution is a two-step lookup: the preferred font file is opened and
// parsed; if anything fails the built-in bitmap face is substituted. The
// result is a Handle that drawing code receives explicitly.
package fonts

import (
	"bytes"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DPI at which point sizes equal pixel sizes.
const DPI = 72

// ErrEmptyFont is returned for a zero-length font file.
var ErrEmptyFont = errors.New("font file is empty")

// Handle is a resolved face ready for drawing.
type Handle struct {
	Face     font.Face
	Name     string
	Fallback bool
}

// Fallback is the built-in face used when the preferred font cannot be
// loaded. It has a fixed size and ignores the requested point size.
var Fallback = Handle{Face: basicfont.Face7x13, Name: "basicfont 7x13", Fallback: true}

// Close releases the face. The fallback face is shared and left open.
func (h Handle) Close() error {
	if h.Face == nil || h.Fallback {
		return nil
	}
	return h.Face.Close()
}

// Load opens the font at path and builds a face at the given point size.
func Load(path string, points float64) (Handle, error) {
	if points <= 0 {
		return Handle{}, errors.Errorf("invalid font size %v", points)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Handle{}, errors.Wrap(err, "read font")
	}
	f, err := Parse(data)
	if err != nil {
		return Handle{}, errors.Wrapf(err, "parse font %s", path)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: points, DPI: DPI, Hinting: font.HintingFull})
	if err != nil {
		return Handle{}, errors.Wrapf(err, "create face for %s", path)
	}
	return Handle{Face: face, Name: fullName(f, path)}, nil
}

// Resolve loads the preferred font, substituting Fallback on any failure.
// The returned error is the load failure, for logging; the handle is always
// usable.
func Resolve(path string, points float64) (Handle, error) {
	h, err := Load(path, points)
	if err != nil {
		return Fallback, err
	}
	return h, nil
}

// Parse decodes a single OpenType/TrueType font or a font collection. From a
// collection the first bold face is chosen, else the first face.
func Parse(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	if !bytes.HasPrefix(data, []byte("ttcf")) {
		return opentype.Parse(data)
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	return pickBold(coll)
}

func pickBold(coll *opentype.Collection) (*opentype.Font, error) {
	n := coll.NumFonts()
	if n == 0 {
		return nil, errors.New("font collection has no faces")
	}
	var buf sfnt.Buffer
	for i := 0; i < n; i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		sub, err := f.Name(&buf, sfnt.NameIDSubfamily)
		if err == nil && strings.EqualFold(strings.TrimSpace(sub), "bold") {
			return f, nil
		}
	}
	return coll.Font(0)
}

func fullName(f *opentype.Font, path string) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return path
}
