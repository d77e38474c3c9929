//go:build !windows && !linux

package window

import "image"

// TODO: macOS support needs CGWindowListCopyWindowInfo via cgo.

func listWindows() ([]Window, error) {
	return nil, ErrUnsupported
}

func windowBounds(id int) (image.Rectangle, error) {
	return image.Rectangle{}, ErrUnsupported
}
