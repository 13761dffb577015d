package tray

// Action identifiers carried by tray menu clicks.
const (
	ActionShow = "show"
	ActionQuit = "quit"
)

// ItemType distinguishes clickable entries from separators.
type ItemType string

const (
	ItemAction  ItemType = "action"
	ItemDivider ItemType = "divider"
)

// Item is a single tray menu entry. ID is the identifier passed to Dispatch.
type Item struct {
	ID          string
	Type        ItemType
	Label       string
	Description string
}

// DefaultItems returns the tray menu: Show, a divider and Quit.
func DefaultItems() []Item {
	return []Item{
		{ID: ActionShow, Type: ItemAction, Label: "Show", Description: "Show the Proton Drive window"},
		{Type: ItemDivider},
		{ID: ActionQuit, Type: ItemAction, Label: "Quit", Description: "Exit Proton Drive"},
	}
}

// ActionIDs lists the identifiers declared by items, in order.
func ActionIDs(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == ItemAction && item.ID != "" {
			out = append(out, item.ID)
		}
	}
	return out
}
