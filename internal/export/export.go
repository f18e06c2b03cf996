// Package export persists rendered icons.
package export

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/evroute/appicon/internal/assets"
	"github.com/pkg/errors"
)

const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// EncodePNG writes img as PNG. Fully opaque RGBA images are stored as 8-bit
// truecolor without an alpha channel.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return errors.Wrap(enc.Encode(w, img), "encode png")
}

// WritePNG encodes img and atomically replaces the file at path with it.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}
	return AtomicWrite(path, buf.Bytes())
}

// AtomicWrite writes data to path via a temporary file in the same directory
// and a rename, so readers never observe a partial file. The parent
// directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	fail := func(err error, msg string) error {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, msg)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		return fail(err, "sync temp file")
	}
	if err := tmp.Chmod(FilePerm); err != nil {
		return fail(err, "chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "move into place %s", path)
	}
	return nil
}

// EnsureManifest writes the asset-catalog Contents.json for iconFile into
// dir unless one already exists. It reports whether a file was written.
func EnsureManifest(dir, iconFile string) (bool, error) {
	path := filepath.Join(dir, assets.ManifestName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrap(err, "stat manifest")
	}
	if err := AtomicWrite(path, assets.AppIconManifest(iconFile)); err != nil {
		return false, err
	}
	return true, nil
}
