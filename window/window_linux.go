//go:build linux

package window

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11 window enumeration through the EWMH client list. Wayland sessions
// without an XWayland bridge will fail to connect and surface that error.

func listWindows() ([]Window, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	ids, err := clientList(conn, root)
	if err != nil {
		return nil, err
	}

	var windows []Window
	for _, id := range ids {
		attrs, err := xproto.GetWindowAttributes(conn, id).Reply()
		if err != nil || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		title := windowName(conn, id)
		if title == "" {
			continue
		}
		rect, err := windowRect(conn, root, id)
		if err != nil {
			continue
		}
		windows = append(windows, Window{
			ID:     int(id),
			Title:  title,
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		})
	}
	return windows, nil
}

func windowBounds(id int) (image.Rectangle, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	rect, err := windowRect(conn, root, xproto.Window(id))
	if err != nil {
		return image.Rectangle{}, &NotFoundError{ID: id}
	}
	return rect, nil
}

func clientList(conn *xgb.Conn, root xproto.Window) ([]xproto.Window, error) {
	atom, err := internAtom(conn, "_NET_CLIENT_LIST")
	if err != nil {
		return nil, err
	}
	prop, err := xproto.GetProperty(conn, false, root, atom, xproto.GetPropertyTypeAny, 0, 1<<16).Reply()
	if err != nil {
		return nil, fmt.Errorf("read _NET_CLIENT_LIST: %w", err)
	}
	ids := make([]xproto.Window, 0, prop.ValueLen)
	for i := 0; i+4 <= len(prop.Value); i += 4 {
		ids = append(ids, xproto.Window(xgb.Get32(prop.Value[i:])))
	}
	return ids, nil
}

func windowRect(conn *xgb.Conn, root, id xproto.Window) (image.Rectangle, error) {
	geom, err := xproto.GetGeometry(conn, xproto.Drawable(id)).Reply()
	if err != nil {
		return image.Rectangle{}, err
	}
	// geometry is relative to the parent; translate to root coordinates
	coords, err := xproto.TranslateCoordinates(conn, id, root, 0, 0).Reply()
	if err != nil {
		return image.Rectangle{}, err
	}
	x := int(coords.DstX)
	y := int(coords.DstY)
	return image.Rect(x, y, x+int(geom.Width), y+int(geom.Height)), nil
}

func windowName(conn *xgb.Conn, id xproto.Window) string {
	if atom, err := internAtom(conn, "_NET_WM_NAME"); err == nil {
		if prop, err := xproto.GetProperty(conn, false, id, atom, xproto.GetPropertyTypeAny, 0, 1<<10).Reply(); err == nil && len(prop.Value) > 0 {
			return string(prop.Value)
		}
	}
	if prop, err := xproto.GetProperty(conn, false, id, xproto.AtomWmName, xproto.GetPropertyTypeAny, 0, 1<<10).Reply(); err == nil {
		return string(prop.Value)
	}
	return ""
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}
