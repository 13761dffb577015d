//go:build cgo || windows
// +build cgo windows

package tray

import (
	"context"

	"github.com/getlantern/systray"

	"github.com/example/protondrive/internal/logging"
)

// Register installs the tray without running an event loop; the window
// framework owns the native loop. The tray is torn down when ctx ends.
func (c *Controller) Register(ctx context.Context) error {
	systray.Register(func() { c.onReady(ctx) }, func() {
		logging.Debugf("tray exited")
	})
	go func() {
		<-ctx.Done()
		systray.Quit()
	}()
	return nil
}

func (c *Controller) onReady(ctx context.Context) {
	icon := normalizedIcon(nil)
	systray.SetIcon(icon)
	setTemplateIcon(icon)
	systray.SetTooltip(c.tooltip)

	for _, item := range c.items {
		switch item.Type {
		case ItemDivider:
			systray.AddSeparator()
		case ItemAction:
			mi := systray.AddMenuItem(item.Label, item.Description)
			go c.listen(ctx, item.ID, mi.ClickedCh)
		default:
			mi := systray.AddMenuItem(item.Label, item.Description)
			mi.Disable()
		}
	}
	logging.Debugf("tray ready with actions %v", ActionIDs(c.items))
}
