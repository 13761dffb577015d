package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"github.com/example/protondrive/frontend"
	"github.com/example/protondrive/internal/app"
	"github.com/example/protondrive/internal/appmenu"
	"github.com/example/protondrive/internal/config"
	"github.com/example/protondrive/internal/desktop"
	"github.com/example/protondrive/internal/logging"
	"github.com/example/protondrive/internal/tray"
	"github.com/example/protondrive/internal/version"
)

const (
	appTitle       = "Proton Drive"
	singleInstance = "io.github.donniedice.protondrive-desktop"
	minWidth       = 800
	minHeight      = 600
)

func main() {
	log.SetFlags(0)

	args, debug, _, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}
	if debug {
		logging.EnableDebug()
	}

	passphrase := config.ResolvePassphrase()

	if len(args) > 0 {
		if err := handleCLI(passphrase, args); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if err := run(passphrase); err != nil {
		log.Fatalf("window exited with error: %v", err)
	}
}

func run(passphrase string) error {
	store, err := config.OpenStore(passphrase)
	if err != nil {
		if store == nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		log.Printf("settings unreadable, starting with defaults: %v", err)
	}
	settings := store.Snapshot()

	window := desktop.NewWindow(nil)
	lifecycle := app.NewLifecycle(window, store)
	commands := app.NewCommands(window, store)
	dispatcher := tray.NewDispatcher(window, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trayController := tray.NewController(tray.DefaultItems(), dispatcher)
	if err := trayController.Register(ctx); err != nil {
		log.Printf("tray unavailable: %v", err)
	}

	log.Printf("Proton Drive %s starting", version.Version)

	return wails.Run(&options.App{
		Title:     appTitle,
		Width:     settings.Window.Width,
		Height:    settings.Window.Height,
		MinWidth:  minWidth,
		MinHeight: minHeight,
		AssetServer: &assetserver.Options{
			Assets: frontend.Assets(),
		},
		BackgroundColour: &options.RGBA{R: 28, G: 27, B: 34, A: 1},
		Menu:             appmenu.Build(appmenu.Layout(), lifecycle, runtime.GOOS),
		Logger:           logging.WailsLogger{},
		LogLevel:         logging.Level(),
		OnStartup:        lifecycle.Startup,
		OnBeforeClose:    lifecycle.BeforeClose,
		OnShutdown:       lifecycle.Shutdown,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: singleInstance,
			OnSecondInstanceLaunch: func(options.SecondInstanceData) {
				dispatcher.Dispatch(tray.ActionShow)
			},
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   appTitle,
				Message: "Version " + version.Version,
			},
		},
		Bind: []interface{}{
			commands,
		},
	})
}

func handleCLI(passphrase string, args []string) error {
	if len(args) == 0 {
		return errors.New("no command provided")
	}

	command := normalizeCommand(args[0])
	switch command {
	case "version":
		fmt.Println(version.Version)
		return nil
	case "settings":
		return handleSettings(passphrase)
	case "reset":
		return handleReset()
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func normalizeCommand(arg string) string {
	trimmed := strings.TrimLeft(arg, "-/")
	return strings.ToLower(trimmed)
}

func handleSettings(passphrase string) error {
	s, err := config.Load(passphrase)
	if err != nil {
		return err
	}
	path, err := config.Path()
	if err != nil {
		return err
	}

	lastFolder := s.LastFolder
	if lastFolder == "" {
		lastFolder = "<none>"
	}
	fmt.Printf("%-14s %s\n", "File", path)
	fmt.Printf("%-14s %s\n", "Instance", s.InstanceID)
	fmt.Printf("%-14s %s\n", "Last folder", lastFolder)
	fmt.Printf("%-14s %dx%d\n", "Window", s.Window.Width, s.Window.Height)
	fmt.Printf("%-14s %s\n", "Updated (UTC)", s.UpdatedUTC)
	return nil
}

func handleReset() error {
	if err := config.Remove(); err != nil {
		return err
	}
	fmt.Println("Settings removed")
	return nil
}

// parseGlobalFlags strips --debug and --console from args. Stray -X linker
// flags forwarded by build wrappers are dropped.
func parseGlobalFlags(args []string) ([]string, bool, bool, error) {
	filtered := make([]string, 0, len(args))
	debug := false
	console := false

	for i := 0; i < len(args); i++ {
		raw := strings.TrimSpace(args[i])
		if raw == "" {
			continue
		}

		if raw == "-X" || raw == "--X" {
			i++
			continue
		}
		if strings.HasPrefix(raw, "-X") && !strings.HasPrefix(raw, "--") {
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(raw, "-"), "=")
		if !strings.HasPrefix(raw, "-") {
			filtered = append(filtered, args[i])
			continue
		}

		switch strings.ToLower(name) {
		case "debug":
			enabled, err := flagValue(name, value, hasValue)
			if err != nil {
				return nil, false, false, err
			}
			debug = enabled
		case "console":
			enabled, err := flagValue(name, value, hasValue)
			if err != nil {
				return nil, false, false, err
			}
			console = enabled
		default:
			filtered = append(filtered, args[i])
		}
	}

	return filtered, debug, console, nil
}

func flagValue(name, value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value %q for --%s", value, name)
	}
	return parsed, nil
}
