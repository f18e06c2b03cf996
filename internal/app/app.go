package app

import (
	"context"
	"path/filepath"

	"github.com/evroute/appicon/internal/config"
	"github.com/evroute/appicon/internal/export"
	"github.com/evroute/appicon/internal/fonts"
	"github.com/evroute/appicon/internal/icon"
	"github.com/pkg/errors"
)

// App runs the icon pipeline: resolve the label font, render, persist.
type App struct {
	Config config.Config
	Size   int
	Logger Logger
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Size: config.IconSize, Logger: NoopLogger{}}
}

// Run generates the icon and returns the path it was written to. A missing
// or unreadable preferred font is logged and replaced by the fallback face;
// every other failure is returned.
func (app *App) Run(ctx context.Context) (string, error) {
	logger := app.Logger
	if logger == nil {
		logger = NoopLogger{}
	}
	if app.Size <= 0 {
		return "", errors.Wrapf(icon.ErrInvalidSize, "got %d", app.Size)
	}
	path := app.Config.OutputPath
	if path == "" {
		path = config.DefaultOutputPath
	}

	points := icon.LabelSize(app.Size)
	face, err := fonts.Resolve(app.Config.FontPath, points)
	if err != nil {
		logger.Errorf("fonts", "font load failed, using %s: %v", face.Name, err)
	} else {
		logger.Infof("fonts", "loaded %s at %.0fpt", face.Name, points)
	}
	defer face.Close()

	img, err := icon.Renderer{Font: face}.Render(app.Size)
	if err != nil {
		return "", err
	}
	logger.Debugf("icon", "rendered %dx%d", app.Size, app.Size)

	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "cancelled before write")
	}
	if err := export.WritePNG(path, img); err != nil {
		return "", errors.Wrap(err, "write icon")
	}
	logger.Debugf("export", "wrote %s", path)

	if app.Config.Manifest {
		wrote, err := export.EnsureManifest(filepath.Dir(path), filepath.Base(path))
		if err != nil {
			return "", errors.Wrap(err, "write asset catalog manifest")
		}
		if wrote {
			logger.Infof("export", "created asset catalog manifest in %s", filepath.Dir(path))
		}
	}

	logger.Infof("app", "app icon created at: %s", path)
	return path, nil
}
