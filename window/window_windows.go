//go:build windows

package window

import (
	"image"
	"sync"
	"syscall"

	"github.com/lxn/win"
)

var (
	user32          = syscall.NewLazyDLL("user32.dll")
	procEnumWindows = user32.NewProc("EnumWindows")
)

// The runtime keeps every syscall.NewCallback in a fixed table that is never
// released, so the callback must be created exactly once for the lifetime of
// the process. Results travel through enumResults under enumMu.
var (
	enumMu      sync.Mutex
	enumResults []Window

	enumCallback = syscall.NewCallback(func(hwnd win.HWND, _ uintptr) uintptr {
		if !win.IsWindowVisible(hwnd) {
			return 1
		}
		title := windowTitle(hwnd)
		if title == "" {
			return 1
		}
		var rect win.RECT
		if !win.GetWindowRect(hwnd, &rect) {
			return 1
		}
		w := int(rect.Right - rect.Left)
		h := int(rect.Bottom - rect.Top)
		if w <= 0 || h <= 0 {
			return 1
		}
		enumResults = append(enumResults, Window{
			ID:     int(hwnd),
			Title:  title,
			X:      int(rect.Left),
			Y:      int(rect.Top),
			Width:  w,
			Height: h,
		})
		return 1
	})
)

func listWindows() ([]Window, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumResults = nil
	procEnumWindows.Call(enumCallback, 0)
	windows := enumResults
	enumResults = nil
	return windows, nil
}

func windowTitle(hwnd win.HWND) string {
	var buf [512]uint16
	n := win.GetWindowText(hwnd, &buf[0], int32(len(buf)))
	if n <= 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:n])
}

func windowBounds(id int) (image.Rectangle, error) {
	hwnd := win.HWND(id)
	var rect win.RECT
	if !win.IsWindowVisible(hwnd) || !win.GetWindowRect(hwnd, &rect) {
		return image.Rectangle{}, &NotFoundError{ID: id}
	}
	return image.Rect(int(rect.Left), int(rect.Top), int(rect.Right), int(rect.Bottom)), nil
}
