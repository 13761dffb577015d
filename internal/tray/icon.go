package tray

import _ "embed"

//go:embed icon.png
var defaultIconData []byte

func cloneIcon(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp
}

// normalizedIcon converts data into the format the platform tray expects.
// Empty data selects the embedded icon.
func normalizedIcon(data []byte) []byte {
	if len(data) == 0 {
		data = defaultIconData
	}
	normalized := platformNormalizeIcon(data)
	if len(normalized) == 0 {
		return cloneIcon(defaultIconData)
	}
	return cloneIcon(normalized)
}
