package display

import (
	"image"
	"image/color"
	"image/draw"
)

// Composite is the stitched result of composing per-monitor captures.
// Rect is the union bounding box of the input monitors in virtual-desktop
// coordinates; Image holds the pixels with its origin at Rect.Min.
type Composite struct {
	Rect  image.Rectangle
	Image *image.RGBA
}

var background = image.NewUniform(color.RGBA{A: 0xFF})

// Compose stitches per-monitor captures into a single image covering the
// union bounding box of their rects. Each raster lands at its monitor's
// offset relative to the box origin; canvas areas no monitor covers stay
// opaque black. Monitor rects normally do not overlap; if the platform ever
// reports overlapping rects the later capture wins.
//
// Compose is a pure function of its input and never touches the OS.
func Compose(captures []Capture) (*Composite, error) {
	if len(captures) == 0 {
		return nil, ErrNoMonitors
	}

	canvas := captures[0].Monitor.Rect
	for _, c := range captures {
		want := image.Pt(c.Monitor.Rect.Dx(), c.Monitor.Rect.Dy())
		got := image.Point{}
		if c.Image != nil {
			got = image.Pt(c.Image.Bounds().Dx(), c.Image.Bounds().Dy())
		}
		if got != want {
			return nil, &InconsistentCaptureError{Monitor: c.Monitor.ID, Want: want, Got: got}
		}
		canvas = canvas.Union(c.Monitor.Rect)
	}

	img := image.NewRGBA(image.Rect(0, 0, canvas.Dx(), canvas.Dy()))
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)

	for _, c := range captures {
		offset := c.Monitor.Rect.Min.Sub(canvas.Min)
		dst := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(c.Monitor.Rect.Dx(), c.Monitor.Rect.Dy()))}
		draw.Draw(img, dst, c.Image, c.Image.Bounds().Min, draw.Src)
		opaque(img, dst)
	}

	return &Composite{Rect: canvas, Image: img}, nil
}

// opaque forces full alpha over a region, normalizing sources that arrive as
// BGRX/RGBX with undefined padding bytes to plain RGB semantics.
func opaque(img *image.RGBA, region image.Rectangle) {
	region = region.Intersect(img.Bounds())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := img.Pix[img.PixOffset(region.Min.X, y):img.PixOffset(region.Max.X, y)]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xFF
		}
	}
}
