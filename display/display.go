package display

import (
	"fmt"
	"image"
	"sync"

	"github.com/kbinani/screenshot"
)

// Monitor describes one connected display. Rect is expressed in
// virtual-desktop coordinates, so Min may be negative for displays placed
// left of or above the primary one.
type Monitor struct {
	ID   int
	Rect image.Rectangle
}

// Capture pairs a monitor with the raster grabbed from it. The image
// dimensions must match the monitor rect; Compose rejects anything else.
type Capture struct {
	Monitor Monitor
	Image   *image.RGBA
}

// Enumerator reports connected displays and grabs their pixels.
type Enumerator interface {
	Monitors() ([]Monitor, error)
	CaptureMonitor(id int) (Capture, error)
}

// ScreenEnumerator is the production Enumerator, backed by the OS through
// the screenshot library. Monitor ids are display indexes, stable for the
// lifetime of one enumeration but not across display reconfiguration.
type ScreenEnumerator struct{}

func (ScreenEnumerator) Monitors() ([]Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoMonitors
	}
	monitors := make([]Monitor, n)
	for i := 0; i < n; i++ {
		monitors[i] = Monitor{ID: i, Rect: screenshot.GetDisplayBounds(i)}
	}
	return monitors, nil
}

func (ScreenEnumerator) CaptureMonitor(id int) (Capture, error) {
	n := screenshot.NumActiveDisplays()
	if id < 0 || id >= n {
		return Capture{}, &CaptureUnavailableError{Monitor: id, Reason: fmt.Sprintf("display %d not connected (%d active)", id, n)}
	}
	bounds := screenshot.GetDisplayBounds(id)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return Capture{}, &CaptureUnavailableError{Monitor: id, Reason: err.Error()}
	}
	return Capture{Monitor: Monitor{ID: id, Rect: bounds}, Image: img}, nil
}

// CaptureRect grabs an arbitrary rectangle of the virtual desktop. Used for
// window capture, where the rectangle comes from the window system rather
// than a display.
func CaptureRect(rect image.Rectangle) (*image.RGBA, error) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, fmt.Errorf("invalid capture rect %v", rect)
	}
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, fmt.Errorf("capture rect %v: %w", rect, err)
	}
	return img, nil
}

// CaptureAll grabs every connected monitor concurrently and returns the
// captures in enumeration order. The grabs belong to one request window;
// any failure aborts the whole call rather than returning a partial set,
// since a composite missing a monitor would misrepresent the desktop.
func CaptureAll(e Enumerator) ([]Capture, error) {
	monitors, err := e.Monitors()
	if err != nil {
		return nil, err
	}

	captures := make([]Capture, len(monitors))
	errs := make([]error, len(monitors))
	var wg sync.WaitGroup
	for i, m := range monitors {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			captures[i], errs[i] = e.CaptureMonitor(id)
		}(i, m.ID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return captures, nil
}
