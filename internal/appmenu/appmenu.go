// Package appmenu describes the application menu and converts it into the
// window framework's menu structure.
package appmenu

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/example/protondrive/internal/logging"
)

// Role identifies what a menu entry does when clicked.
type Role string

const (
	RoleQuit  Role = "quit"
	RoleUndo  Role = "undo"
	RoleRedo  Role = "redo"
	RoleCut   Role = "cut"
	RoleCopy  Role = "copy"
	RolePaste Role = "paste"
)

// Entry is a single item inside a group. A separator carries no role.
type Entry struct {
	Label       string
	Role        Role
	Accelerator *keys.Accelerator
	Separator   bool
}

// Group is a top-level menu. NativeEdit groups are replaced by the
// framework's edit role menu on macOS.
type Group struct {
	Label      string
	Entries    []Entry
	NativeEdit bool
}

// Handler performs the actions behind menu entries.
type Handler interface {
	Quit()
	ExecEdit(command string)
}

// Layout returns the File and Edit groups.
func Layout() []Group {
	return []Group{
		{
			Label: "File",
			Entries: []Entry{
				{Label: "Quit", Role: RoleQuit, Accelerator: keys.CmdOrCtrl("q")},
			},
		},
		{
			Label:      "Edit",
			NativeEdit: true,
			Entries: []Entry{
				{Label: "Undo", Role: RoleUndo, Accelerator: keys.CmdOrCtrl("z")},
				{Label: "Redo", Role: RoleRedo, Accelerator: keys.Combo("z", keys.CmdOrCtrlKey, keys.ShiftKey)},
				{Separator: true},
				{Label: "Cut", Role: RoleCut, Accelerator: keys.CmdOrCtrl("x")},
				{Label: "Copy", Role: RoleCopy, Accelerator: keys.CmdOrCtrl("c")},
				{Label: "Paste", Role: RolePaste, Accelerator: keys.CmdOrCtrl("v")},
			},
		},
	}
}

// Build converts groups into a framework menu for the target OS.
func Build(groups []Group, h Handler, goos string) *menu.Menu {
	root := menu.NewMenu()
	for _, group := range groups {
		if group.NativeEdit && goos == "darwin" {
			root.Append(menu.EditMenu())
			continue
		}
		sub := root.AddSubmenu(group.Label)
		for _, entry := range group.Entries {
			if entry.Separator {
				sub.AddSeparator()
				continue
			}
			sub.AddText(entry.Label, entry.Accelerator, clickHandler(entry.Role, h))
		}
	}
	return root
}

func clickHandler(role Role, h Handler) menu.Callback {
	return func(_ *menu.CallbackData) {
		logging.Debugf("application menu %s selected", role)
		if h == nil {
			return
		}
		switch role {
		case RoleQuit:
			h.Quit()
		case RoleUndo, RoleRedo, RoleCut, RoleCopy, RolePaste:
			h.ExecEdit(string(role))
		}
	}
}
