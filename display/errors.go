package display

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoMonitors indicates the enumerator reported no connected displays,
// or Compose was handed an empty capture list.
var ErrNoMonitors = errors.New("no active displays found")

// CaptureUnavailableError indicates a monitor could not be grabbed, most
// commonly because it was disconnected between enumeration and capture.
type CaptureUnavailableError struct {
	Monitor int
	Reason  string
}

func (e *CaptureUnavailableError) Error() string {
	return fmt.Sprintf("capture of display %d unavailable: %s", e.Monitor, e.Reason)
}

// InconsistentCaptureError indicates a raster whose dimensions disagree with
// its monitor rect. It points at a bug in the capture path; left unchecked it
// would produce a silently wrong composite instead of a crash.
type InconsistentCaptureError struct {
	Monitor int
	Want    image.Point
	Got     image.Point
}

func (e *InconsistentCaptureError) Error() string {
	return fmt.Sprintf("display %d capture is %dx%d, expected %dx%d",
		e.Monitor, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}
