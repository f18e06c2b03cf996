package assets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppIconManifest(t *testing.T) {
	var manifest struct {
		Images []struct {
			Filename string `json:"filename"`
			Idiom    string `json:"idiom"`
			Platform string `json:"platform"`
			Size     string `json:"size"`
		} `json:"images"`
		Info struct {
			Author  string `json:"author"`
			Version int    `json:"version"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(AppIconManifest("AppIcon.png"), &manifest))

	require.Len(t, manifest.Images, 1)
	img := manifest.Images[0]
	assert.Equal(t, "AppIcon.png", img.Filename)
	assert.Equal(t, "universal", img.Idiom)
	assert.Equal(t, "ios", img.Platform)
	assert.Equal(t, "1024x1024", img.Size)
	assert.Equal(t, 1, manifest.Info.Version)
}

func TestAppIconManifestLeavesNoPlaceholder(t *testing.T) {
	assert.NotContains(t, string(AppIconManifest("Icon-1024.png")), "{{")
}
