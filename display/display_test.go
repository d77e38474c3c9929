package display

import (
	"errors"
	"image"
	"sync/atomic"
	"testing"
)

// fakeEnumerator serves captures from memory, optionally failing one display.
type fakeEnumerator struct {
	monitors []Monitor
	failID   int
	calls    int32
}

func (f *fakeEnumerator) Monitors() ([]Monitor, error) {
	if len(f.monitors) == 0 {
		return nil, ErrNoMonitors
	}
	return f.monitors, nil
}

func (f *fakeEnumerator) CaptureMonitor(id int) (Capture, error) {
	atomic.AddInt32(&f.calls, 1)
	if id == f.failID {
		return Capture{}, &CaptureUnavailableError{Monitor: id, Reason: "display disconnected"}
	}
	for _, m := range f.monitors {
		if m.ID == id {
			img := image.NewRGBA(image.Rect(0, 0, m.Rect.Dx(), m.Rect.Dy()))
			return Capture{Monitor: m, Image: img}, nil
		}
	}
	return Capture{}, &CaptureUnavailableError{Monitor: id, Reason: "unknown display"}
}

func TestCaptureAllPreservesOrder(t *testing.T) {
	enum := &fakeEnumerator{
		failID: -1,
		monitors: []Monitor{
			{ID: 0, Rect: image.Rect(0, 0, 800, 600)},
			{ID: 1, Rect: image.Rect(800, 0, 1824, 768)},
			{ID: 2, Rect: image.Rect(-400, 0, 0, 300)},
		},
	}

	captures, err := CaptureAll(enum)
	if err != nil {
		t.Fatalf("CaptureAll: %v", err)
	}
	if len(captures) != 3 {
		t.Fatalf("got %d captures, want 3", len(captures))
	}
	for i, c := range captures {
		if c.Monitor.ID != i {
			t.Fatalf("capture %d holds monitor %d", i, c.Monitor.ID)
		}
		if c.Image.Bounds().Dx() != c.Monitor.Rect.Dx() {
			t.Fatalf("capture %d has wrong width", i)
		}
	}
	if n := atomic.LoadInt32(&enum.calls); n != 3 {
		t.Fatalf("expected 3 grabs, got %d", n)
	}
}

func TestCaptureAllAbortsOnFailure(t *testing.T) {
	enum := &fakeEnumerator{
		failID: 1,
		monitors: []Monitor{
			{ID: 0, Rect: image.Rect(0, 0, 100, 100)},
			{ID: 1, Rect: image.Rect(100, 0, 200, 100)},
		},
	}

	_, err := CaptureAll(enum)
	var unavailable *CaptureUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected CaptureUnavailableError, got %v", err)
	}
	if unavailable.Monitor != 1 {
		t.Fatalf("error names monitor %d, want 1", unavailable.Monitor)
	}
}

func TestCaptureAllNoMonitors(t *testing.T) {
	if _, err := CaptureAll(&fakeEnumerator{failID: -1}); !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("expected ErrNoMonitors, got %v", err)
	}
}

func TestCaptureRectRejectsEmptyRect(t *testing.T) {
	if _, err := CaptureRect(image.Rect(10, 10, 10, 50)); err == nil {
		t.Fatal("expected error for zero-width rect")
	}
}
