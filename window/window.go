// Package window enumerates top-level windows and reports their geometry in
// virtual-desktop coordinates. Each platform ships its own implementation
// behind build tags; unsupported platforms return ErrUnsupported.
package window

import (
	"errors"
	"fmt"
	"image"
)

// Window is one visible, titled top-level window.
type Window struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Rect returns the window geometry as a rectangle.
func (w Window) Rect() image.Rectangle {
	return image.Rect(w.X, w.Y, w.X+w.Width, w.Y+w.Height)
}

// ErrUnsupported indicates window introspection is not implemented for the
// current platform.
var ErrUnsupported = errors.New("window introspection is not supported on this platform")

// NotFoundError indicates a window id that no longer names an open window.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("window %d not found", e.ID)
}

// List returns the visible, titled top-level windows, skipping zero-sized
// ones. Ids stay valid only while the window remains open.
func List() ([]Window, error) {
	return listWindows()
}

// Bounds returns the current on-screen rectangle of the window with the
// given id.
func Bounds(id int) (image.Rectangle, error) {
	return windowBounds(id)
}
