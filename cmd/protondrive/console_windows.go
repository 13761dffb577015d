//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

func init() {
	if shouldShowConsole(os.Args[1:]) {
		return
	}
	hideConsoleWindow()
}

// shouldShowConsole keeps the console for CLI sub-commands and when asked for
// explicitly with --console or PROTONDRIVE_SHOW_CONSOLE.
func shouldShowConsole(args []string) bool {
	if os.Getenv("PROTONDRIVE_SHOW_CONSOLE") != "" {
		return true
	}

	filtered, _, console, err := parseGlobalFlags(args)
	if err != nil {
		return true
	}
	return console || len(filtered) > 0
}

func hideConsoleWindow() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	user32 := windows.NewLazySystemDLL("user32.dll")

	getConsoleWindow := kernel32.NewProc("GetConsoleWindow")
	showWindow := user32.NewProc("ShowWindow")
	freeConsole := kernel32.NewProc("FreeConsole")

	hwnd, _, _ := getConsoleWindow.Call()
	if hwnd == 0 {
		return
	}

	const swHide = 0
	showWindow.Call(hwnd, swHide)
	freeConsole.Call()
}
