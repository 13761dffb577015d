//go:build windows

package tray

import "testing"

func TestEmbeddedPNGWrappedAsICO(t *testing.T) {
	icon := normalizedIcon(nil)
	if !isICO(icon) {
		t.Fatalf("expected ico container, got header % x", icon[:4])
	}
}
