package app

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/evroute/appicon/internal/assets"
	"github.com/evroute/appicon/internal/config"
	"github.com/evroute/appicon/internal/icon"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

func testApp(t *testing.T, fontPath string) (*App, *test.Hook) {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(root, config.DefaultOutputPath)
	cfg.FontPath = fontPath

	log, hook := test.NewNullLogger()
	a := New(cfg)
	a.Logger = NewLogrusLogger(log)
	return a, hook
}

func entriesFor(hook *test.Hook, component string, level logrus.Level) []*logrus.Entry {
	var out []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Data["component"] == component && e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func TestRunWithFallbackFont(t *testing.T) {
	a, hook := testApp(t, filepath.Join(t.TempDir(), "missing.ttc"))

	path, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Config.OutputPath, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 1024, img.Bounds().Dx())
	require.Equal(t, 1024, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{0, 180, 100, 255}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBA{19, 140, 70, 255}, color.RGBAModel.Convert(img.At(1023, 1023)))

	fontErrors := entriesFor(hook, "fonts", logrus.ErrorLevel)
	require.Len(t, fontErrors, 1)
	assert.Contains(t, fontErrors[0].Message, "basicfont")
	assert.Len(t, entriesFor(hook, "app", logrus.InfoLevel), 1)

	_, err = os.Stat(filepath.Join(filepath.Dir(path), assets.ManifestName))
	assert.NoError(t, err, "manifest written next to the icon")
}

func TestRunWithPreferredFont(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "GoBold.ttf")
	require.NoError(t, os.WriteFile(fontPath, gobold.TTF, 0o644))
	a, hook := testApp(t, fontPath)

	_, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, entriesFor(hook, "fonts", logrus.ErrorLevel))
	loaded := entriesFor(hook, "fonts", logrus.InfoLevel)
	require.Len(t, loaded, 1)
	assert.Contains(t, loaded[0].Message, "Go Bold")
	assert.Contains(t, loaded[0].Message, "400pt")
}

func TestRunIsIdempotent(t *testing.T) {
	a, _ := testApp(t, filepath.Join(t.TempDir(), "missing.ttc"))

	path, err := a.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = a.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "outputs differ between runs")
}

func TestRunRejectsInvalidSizeBeforeWriting(t *testing.T) {
	a, _ := testApp(t, "")
	a.Size = 0

	_, err := a.Run(context.Background())
	assert.ErrorIs(t, err, icon.ErrInvalidSize)
	_, statErr := os.Stat(a.Config.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunUnwritableOutput(t *testing.T) {
	a, _ := testApp(t, "")
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	a.Config.OutputPath = filepath.Join(blocker, "AppIcon.appiconset", "AppIcon.png")

	_, err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write icon")
}

func TestRunCancelled(t *testing.T) {
	a, _ := testApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(a.Config.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWithoutManifest(t *testing.T) {
	a, _ := testApp(t, "")
	a.Config.Manifest = false

	path, err := a.Run(context.Background())
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(path), assets.ManifestName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNilLoggerIsTolerated(t *testing.T) {
	a, _ := testApp(t, "")
	a.Logger = nil
	_, err := a.Run(context.Background())
	assert.NoError(t, err)
}

func TestNewLogrusDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusLogger(NewLogrus(&buf, true))
	logger.Debugf("icon", "rendered %dx%d", 8, 8)
	assert.Contains(t, buf.String(), "component=icon")
	assert.Contains(t, buf.String(), "rendered 8x8")

	buf.Reset()
	quiet := NewLogrusLogger(NewLogrus(&buf, false))
	quiet.Debugf("icon", "hidden")
	assert.Empty(t, buf.String())
}
