// Package desktop wraps the framework context of the main window. Every
// operation is a silent no-op while no window is attached.
package desktop

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/example/protondrive/internal/logging"
)

// Runtime is the subset of the window framework used by the application.
type Runtime interface {
	Show(ctx context.Context)
	Focus(ctx context.Context)
	Quit(ctx context.Context)
	PickFolder(ctx context.Context, title, defaultDir string) (string, error)
	Emit(ctx context.Context, event string, data ...interface{})
	ExecJS(ctx context.Context, js string)
	Size(ctx context.Context) (int, int)
}

// Window is the handle to the single main window.
type Window struct {
	rt Runtime

	mu  sync.RWMutex
	ctx context.Context
}

// NewWindow returns a detached window handle backed by rt. A nil rt uses the
// Wails runtime.
func NewWindow(rt Runtime) *Window {
	if rt == nil {
		rt = wailsRuntime{}
	}
	return &Window{rt: rt}
}

// Attach binds the handle to the framework context received on startup.
func (w *Window) Attach(ctx context.Context) {
	w.mu.Lock()
	w.ctx = ctx
	w.mu.Unlock()
	logging.Debugf("main window attached")
}

// Detach forgets the framework context; called on shutdown.
func (w *Window) Detach() {
	w.mu.Lock()
	w.ctx = nil
	w.mu.Unlock()
	logging.Debugf("main window detached")
}

func (w *Window) context() (context.Context, bool) {
	if w == nil {
		return nil, false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ctx, w.ctx != nil
}

// Attached reports whether a main window exists.
func (w *Window) Attached() bool {
	_, ok := w.context()
	return ok
}

// ShowAndFocus reveals, unminimises and focuses the main window. It reports
// false when no window exists.
func (w *Window) ShowAndFocus() bool {
	ctx, ok := w.context()
	if !ok {
		return false
	}
	w.rt.Show(ctx)
	w.rt.Focus(ctx)
	return true
}

// PickFolder opens the native folder picker and blocks until it is dismissed.
// Cancelling yields an empty path and a nil error.
func (w *Window) PickFolder(title, defaultDir string) (string, error) {
	ctx, ok := w.context()
	if !ok {
		return "", nil
	}
	return w.rt.PickFolder(ctx, title, defaultDir)
}

// Emit sends an event to the web-view.
func (w *Window) Emit(event string, data ...interface{}) bool {
	ctx, ok := w.context()
	if !ok {
		return false
	}
	w.rt.Emit(ctx, event, data...)
	return true
}

// Quit asks the framework to close the application.
func (w *Window) Quit() {
	ctx, ok := w.context()
	if !ok {
		return
	}
	w.rt.Quit(ctx)
}

// Size returns the current window dimensions. ok is false when no window
// exists.
func (w *Window) Size() (width, height int, ok bool) {
	ctx, attached := w.context()
	if !attached {
		return 0, 0, false
	}
	width, height = w.rt.Size(ctx)
	return width, height, true
}

// ExecEdit forwards an editing command such as "undo" or "paste" to the
// focused document in the web-view.
func (w *Window) ExecEdit(command string) {
	ctx, ok := w.context()
	if !ok || command == "" {
		return
	}
	w.rt.ExecJS(ctx, "document.execCommand("+quoteJS(command)+")")
}

func quoteJS(value string) string {
	out := make([]byte, 0, len(value)+2)
	out = append(out, '\'')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\'' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(append(out, '\''))
}

type wailsRuntime struct{}

func (wailsRuntime) Show(ctx context.Context) {
	runtime.WindowUnminimise(ctx)
	runtime.WindowShow(ctx)
}

// Focus raises the window above others. The v2 runtime has no focus call, so
// the window is pinned on top and released again.
func (wailsRuntime) Focus(ctx context.Context) {
	runtime.WindowSetAlwaysOnTop(ctx, true)
	runtime.WindowSetAlwaysOnTop(ctx, false)
}

func (wailsRuntime) Quit(ctx context.Context) { runtime.Quit(ctx) }

func (wailsRuntime) PickFolder(ctx context.Context, title, defaultDir string) (string, error) {
	return runtime.OpenDirectoryDialog(ctx, runtime.OpenDialogOptions{
		Title:                title,
		DefaultDirectory:     defaultDir,
		CanCreateDirectories: true,
	})
}

func (wailsRuntime) Emit(ctx context.Context, event string, data ...interface{}) {
	runtime.EventsEmit(ctx, event, data...)
}

func (wailsRuntime) ExecJS(ctx context.Context, js string) { runtime.WindowExecJS(ctx, js) }

func (wailsRuntime) Size(ctx context.Context) (int, int) { return runtime.WindowGetSize(ctx) }
