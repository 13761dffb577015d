package release

import (
	"fmt"
	"path"
	"strings"
)

const fallbackFile = "Proton_Drive.AppImage"

// platformFiles maps GOOS and GOARCH to the published file name. Both
// supported architectures ship the same file.
var platformFiles = map[string]map[string]string{
	"linux": {
		"amd64": "Proton_Drive.AppImage",
		"arm64": "Proton_Drive.AppImage",
	},
	"darwin": {
		"amd64": "Proton_Drive.dmg",
		"arm64": "Proton_Drive.dmg",
	},
	"windows": {
		"amd64": "Proton_Drive.exe",
		"arm64": "Proton_Drive.exe",
	},
}

// FileFor returns the expected asset name for goos/goarch. Unknown
// architectures use amd64 and unknown systems fall back to the AppImage.
func FileFor(goos, goarch string) string {
	files, ok := platformFiles[goos]
	if !ok {
		return fallbackFile
	}
	if name, ok := files[goarch]; ok {
		return name
	}
	if name, ok := files["amd64"]; ok {
		return name
	}
	return fallbackFile
}

// SelectAsset picks the asset for goos/goarch. An exact name match wins,
// otherwise the first asset whose name contains the file stem is used.
func SelectAsset(rel *Release, goos, goarch string) (Asset, error) {
	want := FileFor(goos, goarch)
	if rel == nil || len(rel.Assets) == 0 {
		return Asset{}, fmt.Errorf("%w: builds may still be in progress", ErrNoAssets)
	}

	for _, asset := range rel.Assets {
		if asset.Name == want {
			return asset, nil
		}
	}

	ext := path.Ext(want)
	stem := strings.TrimSuffix(want, ext)
	for _, asset := range rel.Assets {
		if strings.Contains(asset.Name, stem) && strings.EqualFold(path.Ext(asset.Name), ext) {
			return asset, nil
		}
	}
	for _, asset := range rel.Assets {
		if strings.Contains(asset.Name, stem) {
			return asset, nil
		}
	}

	names := make([]string, 0, len(rel.Assets))
	for _, asset := range rel.Assets {
		names = append(names, asset.Name)
	}
	return Asset{}, fmt.Errorf("no %s found for %s-%s\navailable: %s", want, goos, goarch, strings.Join(names, ", "))
}
