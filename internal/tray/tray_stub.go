//go:build !cgo && !windows
// +build !cgo,!windows

package tray

import (
	"context"
	"errors"
)

// Register returns an error indicating tray functionality is unavailable without cgo.
func (c *Controller) Register(_ context.Context) error {
	return errors.New("system tray is unavailable without cgo support")
}
