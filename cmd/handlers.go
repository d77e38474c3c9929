package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"screenops/display"
	"screenops/internal/tools"
	"screenops/window"
)

// Capture entry points are variables so tests can substitute fakes without
// touching the OS.
var (
	enumerator       display.Enumerator = display.ScreenEnumerator{}
	captureAllFunc                      = display.CaptureAll
	captureRectFunc                     = display.CaptureRect
	listWindowsFunc                     = window.List
	windowBoundsFunc                    = window.Bounds
)

const defaultInlineLimit = 4 << 20

// inlineBinaryLimit caps inline payloads; larger captures fall back to file
// delivery. Overridden from config at server startup.
var inlineBinaryLimit = defaultInlineLimit

// jpegQuality is the encoder setting used when a tool call requests JPEG
// without a quality argument. Overridden from config at server startup.
var jpegQuality = 90

var registerHandlersOnce sync.Once

func init() {
	registerHandlers()
}

func registerHandlers() {
	registerHandlersOnce.Do(func() {
		tools.RegisterHandler("get_screen_info", getScreenInfoHandler)
		tools.RegisterHandler("capture_screen_by_number", captureScreenByNumberHandler)
		tools.RegisterHandler("capture_all_screens", captureAllScreensHandler)
		tools.RegisterHandler("get_window_list", getWindowListHandler)
		tools.RegisterHandler("capture_window", captureWindowHandler)
	})
}

func toolDebug(format string, args ...interface{}) {
	if Verbose {
		log.Printf(format, args...)
	}
}

type monitorInfo struct {
	ID     int `json:"id"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Top    int `json:"top"`
	Left   int `json:"left"`
}

type screenInfo struct {
	MonitorCount int           `json:"monitor_count"`
	Monitors     []monitorInfo `json:"monitors"`
}

func getScreenInfoHandler(ctx context.Context, args map[string]interface{}) (tools.Result, error) {
	toolDebug("[TOOLS] get_screen_info CALLED")

	monitors, err := enumerator.Monitors()
	if err != nil {
		return tools.Result{}, err
	}

	info := screenInfo{MonitorCount: len(monitors), Monitors: make([]monitorInfo, 0, len(monitors))}
	for _, m := range monitors {
		info.Monitors = append(info.Monitors, monitorInfo{
			ID:     m.ID,
			Width:  m.Rect.Dx(),
			Height: m.Rect.Dy(),
			Top:    m.Rect.Min.Y,
			Left:   m.Rect.Min.X,
		})
	}

	payload, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return tools.Result{}, fmt.Errorf("get_screen_info: marshal: %w", err)
	}

	toolDebug("[TOOLS] get_screen_info RESULT count=%d", info.MonitorCount)
	return tools.Result{Text: string(payload)}, nil
}

func captureScreenByNumberHandler(ctx context.Context, args map[string]interface{}) (tools.Result, error) {
	toolDebug("[TOOLS] capture_screen_by_number CALLED args=%#v", args)

	id, ok := toInt(argValue(args, "monitor_number"))
	if !ok {
		return tools.Result{}, fmt.Errorf("capture_screen_by_number: monitor_number argument is required")
	}

	capture, err := enumerator.CaptureMonitor(id)
	if err != nil {
		return tools.Result{}, err
	}

	caption := fmt.Sprintf("Captured display %d, %dx%d", id, capture.Monitor.Rect.Dx(), capture.Monitor.Rect.Dy())
	return deliverImage(args, capture.Image, fmt.Sprintf("screen-%d", id), caption)
}

func captureAllScreensHandler(ctx context.Context, args map[string]interface{}) (tools.Result, error) {
	toolDebug("[TOOLS] capture_all_screens CALLED args=%#v", args)

	captures, err := captureAllFunc(enumerator)
	if err != nil {
		return tools.Result{}, err
	}
	comp, err := display.Compose(captures)
	if err != nil {
		return tools.Result{}, err
	}

	caption := fmt.Sprintf("Captured %d displays stitched into %dx%d, origin (%d,%d)",
		len(captures), comp.Rect.Dx(), comp.Rect.Dy(), comp.Rect.Min.X, comp.Rect.Min.Y)
	return deliverImage(args, comp.Image, "screens", caption)
}

func getWindowListHandler(ctx context.Context, args map[string]interface{}) (tools.Result, error) {
	toolDebug("[TOOLS] get_window_list CALLED")

	windows, err := listWindowsFunc()
	if err != nil {
		return tools.Result{}, err
	}
	if windows == nil {
		windows = []window.Window{}
	}

	payload, err := json.MarshalIndent(windows, "", "  ")
	if err != nil {
		return tools.Result{}, fmt.Errorf("get_window_list: marshal: %w", err)
	}

	toolDebug("[TOOLS] get_window_list RESULT count=%d", len(windows))
	return tools.Result{Text: string(payload)}, nil
}

func captureWindowHandler(ctx context.Context, args map[string]interface{}) (tools.Result, error) {
	toolDebug("[TOOLS] capture_window CALLED args=%#v", args)

	id, ok := toInt(argValue(args, "window_id"))
	if !ok {
		return tools.Result{}, fmt.Errorf("capture_window: window_id argument is required")
	}

	bounds, err := windowBoundsFunc(id)
	if err != nil {
		return tools.Result{}, err
	}
	img, err := captureRectFunc(bounds)
	if err != nil {
		return tools.Result{}, fmt.Errorf("capture_window %d: %w", id, err)
	}

	caption := fmt.Sprintf("Captured window %d, %dx%d", id, bounds.Dx(), bounds.Dy())
	return deliverImage(args, img, fmt.Sprintf("window-%d", id), caption)
}

// deliverImage encodes an image and returns it inline or written to disk,
// depending on the return argument and the inline size cap.
func deliverImage(args map[string]interface{}, img image.Image, prefix, caption string) (tools.Result, error) {
	if w, ok := toInt(argValue(args, "max_width")); ok && w > 0 {
		img = display.Shrink(img, w)
	}

	format := strings.TrimSpace(strings.ToLower(mcp.ExtractString(args, "format")))
	if format == "" {
		format = "png"
	}
	var qualityPtr *int
	if q, ok := toInt(argValue(args, "quality")); ok {
		qualityPtr = &q
	} else if isJPEGFormat(format) {
		q := jpegQuality
		qualityPtr = &q
	}

	payload, err := display.Encode(img, format, qualityPtr)
	if err != nil {
		return tools.Result{}, err
	}

	delivery := strings.TrimSpace(strings.ToLower(mcp.ExtractString(args, "return")))
	if delivery == "" {
		delivery = "binary"
	}
	if delivery == "binary" && len(payload.Data) > inlineBinaryLimit {
		delivery = "file"
	}

	caption = fmt.Sprintf("%s (%s, %d bytes).", caption, payload.MimeType, len(payload.Data))

	switch delivery {
	case "file":
		formatExt := "png"
		if payload.MimeType == "image/jpeg" {
			formatExt = "jpg"
		}
		output := mcp.ExtractString(args, "output")
		path, err := resolveOutputPath(output, "", "", prefix, formatExt)
		if err != nil {
			return tools.Result{}, err
		}
		if err := os.WriteFile(path, payload.Data, 0o644); err != nil {
			return tools.Result{}, fmt.Errorf("write capture: %w", err)
		}
		toolDebug("[TOOLS] capture RESULT saved=%s bytes=%d", path, len(payload.Data))
		return tools.Result{
			Text:        fmt.Sprintf("%s Saved to %s.", caption, path),
			Binary:      payload.Data,
			ContentType: payload.MimeType,
			FilePath:    path,
		}, nil
	default:
		toolDebug("[TOOLS] capture RESULT inline bytes=%d", len(payload.Data))
		return tools.Result{
			Text:        caption,
			Binary:      payload.Data,
			ContentType: payload.MimeType,
		}, nil
	}
}

func argValue(args map[string]interface{}, key string) interface{} {
	if args == nil {
		return nil
	}
	return args[key]
}

func toInt(v interface{}) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	case string:
		if s := strings.TrimSpace(val); s != "" {
			if parsed, err := strconv.Atoi(s); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}
