package tray

import (
	"context"

	"github.com/example/protondrive/internal/logging"
)

const defaultTooltip = "Proton Drive"

// Controller owns the tray icon and its menu.
type Controller struct {
	items      []Item
	dispatcher *Dispatcher
	tooltip    string
}

// NewController builds a tray for items whose clicks are routed through d.
// Empty items fall back to DefaultItems.
func NewController(items []Item, d *Dispatcher) *Controller {
	if len(items) == 0 {
		items = DefaultItems()
	}
	return &Controller{
		items:      append([]Item(nil), items...),
		dispatcher: d,
		tooltip:    defaultTooltip,
	}
}

// listen forwards clicks on one menu entry to the dispatcher until ctx ends
// or the click channel closes.
func (c *Controller) listen(ctx context.Context, id string, clicks <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-clicks:
			if !ok {
				return
			}
			logging.Debugf("tray item %q clicked", id)
			c.dispatcher.Dispatch(id)
		}
	}
}
