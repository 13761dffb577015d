package desktop

import (
	"context"
	"errors"
	"testing"
)

type fakeRuntime struct {
	shows, focuses, quits int
	picked                string
	pickErr               error
	pickDefault           string
	events                []string
	js                    []string
	width, height         int
}

func (f *fakeRuntime) Show(context.Context)  { f.shows++ }
func (f *fakeRuntime) Focus(context.Context) { f.focuses++ }
func (f *fakeRuntime) Quit(context.Context)  { f.quits++ }
func (f *fakeRuntime) PickFolder(_ context.Context, _ string, defaultDir string) (string, error) {
	f.pickDefault = defaultDir
	return f.picked, f.pickErr
}
func (f *fakeRuntime) Emit(_ context.Context, event string, _ ...interface{}) {
	f.events = append(f.events, event)
}
func (f *fakeRuntime) ExecJS(_ context.Context, js string) { f.js = append(f.js, js) }
func (f *fakeRuntime) Size(context.Context) (int, int)     { return f.width, f.height }

func TestDetachedWindowIsNoop(t *testing.T) {
	rt := &fakeRuntime{picked: "/should/not/be/used"}
	w := NewWindow(rt)

	if w.ShowAndFocus() {
		t.Fatalf("ShowAndFocus reported success without a window")
	}
	if path, err := w.PickFolder("t", ""); path != "" || err != nil {
		t.Fatalf("expected empty result without a window, got %q, %v", path, err)
	}
	if w.Emit("notification") {
		t.Fatalf("Emit reported success without a window")
	}
	w.Quit()
	w.ExecEdit("undo")

	if rt.shows+rt.focuses+rt.quits != 0 || len(rt.events) != 0 || len(rt.js) != 0 {
		t.Fatalf("runtime touched while detached: %+v", rt)
	}
}

func TestNilWindowIsNoop(t *testing.T) {
	var w *Window
	if w.Attached() || w.ShowAndFocus() {
		t.Fatalf("nil window must behave as detached")
	}
}

func TestAttachedWindowDelegates(t *testing.T) {
	rt := &fakeRuntime{picked: "/home/user/Drive"}
	w := NewWindow(rt)
	w.Attach(context.Background())

	if !w.ShowAndFocus() {
		t.Fatalf("ShowAndFocus should succeed when attached")
	}
	if rt.shows != 1 || rt.focuses != 1 {
		t.Fatalf("expected show and focus once, got %d/%d", rt.shows, rt.focuses)
	}

	path, err := w.PickFolder("Select", "/home/user")
	if err != nil || path != "/home/user/Drive" {
		t.Fatalf("unexpected pick result %q, %v", path, err)
	}
	if rt.pickDefault != "/home/user" {
		t.Fatalf("default directory not forwarded: %q", rt.pickDefault)
	}

	w.ExecEdit("paste")
	if len(rt.js) != 1 || rt.js[0] != "document.execCommand('paste')" {
		t.Fatalf("unexpected js %v", rt.js)
	}

	w.Detach()
	if w.ShowAndFocus() {
		t.Fatalf("ShowAndFocus should fail after detach")
	}
}

func TestSizeRequiresWindow(t *testing.T) {
	rt := &fakeRuntime{width: 1024, height: 640}
	w := NewWindow(rt)

	if _, _, ok := w.Size(); ok {
		t.Fatalf("Size reported a window while detached")
	}

	w.Attach(context.Background())
	width, height, ok := w.Size()
	if !ok || width != 1024 || height != 640 {
		t.Fatalf("unexpected size %dx%d ok=%v", width, height, ok)
	}
}

func TestPickFolderPropagatesError(t *testing.T) {
	rt := &fakeRuntime{pickErr: errors.New("dialog unavailable")}
	w := NewWindow(rt)
	w.Attach(context.Background())

	if _, err := w.PickFolder("Select", ""); err == nil || err.Error() != "dialog unavailable" {
		t.Fatalf("expected dialog error, got %v", err)
	}
}

func TestQuoteJSEscapes(t *testing.T) {
	if got := quoteJS(`it's\`); got != `'it\'s\\'` {
		t.Fatalf("unexpected quoting %q", got)
	}
}
