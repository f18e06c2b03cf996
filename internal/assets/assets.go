package assets

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// ManifestName is the file Xcode reads to discover an asset-catalog entry.
const ManifestName = "Contents.json"

//go:embed Contents.json
var manifestTemplate string

// AppIconManifest returns the Contents.json body for an app icon set holding
// a single universal 1024pt image stored in filename.
func AppIconManifest(filename string) []byte {
	quoted, _ := json.Marshal(filename)
	return []byte(strings.ReplaceAll(manifestTemplate, "{{FILENAME}}", string(quoted)))
}
