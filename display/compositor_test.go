package display

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func solidCapture(id int, rect image.Rectangle, c color.RGBA) Capture {
	img := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return Capture{Monitor: Monitor{ID: id, Rect: rect}, Image: img}
}

func assertRegion(t *testing.T, comp *Composite, region image.Rectangle, want color.RGBA) {
	t.Helper()
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			got := comp.Image.RGBAAt(x, y)
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
	green = color.RGBA{G: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func TestComposeBoundingBox(t *testing.T) {
	cases := []struct {
		name  string
		rects []image.Rectangle
		want  image.Rectangle
	}{
		{
			name:  "side by side",
			rects: []image.Rectangle{image.Rect(0, 0, 800, 600), image.Rect(800, 0, 1824, 768)},
			want:  image.Rect(0, 0, 1824, 768),
		},
		{
			name:  "negative offsets",
			rects: []image.Rectangle{image.Rect(-1920, -200, 0, 880), image.Rect(0, 0, 1920, 1080)},
			want:  image.Rect(-1920, -200, 1920, 1080),
		},
		{
			name:  "stacked",
			rects: []image.Rectangle{image.Rect(0, 0, 1280, 720), image.Rect(0, 720, 1280, 1440)},
			want:  image.Rect(0, 0, 1280, 1440),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			captures := make([]Capture, len(tc.rects))
			for i, r := range tc.rects {
				captures[i] = solidCapture(i, r, black)
			}
			comp, err := Compose(captures)
			if err != nil {
				t.Fatalf("Compose: %v", err)
			}
			if comp.Rect != tc.want {
				t.Fatalf("canvas rect = %v, want %v", comp.Rect, tc.want)
			}
			if got := comp.Image.Bounds(); got.Dx() != tc.want.Dx() || got.Dy() != tc.want.Dy() {
				t.Fatalf("canvas image %dx%d, want %dx%d", got.Dx(), got.Dy(), tc.want.Dx(), tc.want.Dy())
			}
		})
	}
}

func TestComposeTwoMonitorScenario(t *testing.T) {
	a := solidCapture(0, image.Rect(0, 0, 800, 600), red)
	b := solidCapture(1, image.Rect(800, 0, 1824, 768), blue)

	comp, err := Compose([]Capture{a, b})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if comp.Rect != image.Rect(0, 0, 1824, 768) {
		t.Fatalf("canvas rect = %v", comp.Rect)
	}

	assertRegion(t, comp, image.Rect(0, 0, 800, 600), red)
	assertRegion(t, comp, image.Rect(800, 0, 1824, 768), blue)
	// below the shorter monitor only background remains
	assertRegion(t, comp, image.Rect(0, 600, 800, 768), black)
}

func TestComposePixelFidelityAtOffsets(t *testing.T) {
	// distinct colors per monitor, arrangement crossing the origin
	a := solidCapture(0, image.Rect(-100, -50, 0, 50), red)
	b := solidCapture(1, image.Rect(0, 0, 100, 100), green)

	comp, err := Compose([]Capture{a, b})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if comp.Rect != image.Rect(-100, -50, 100, 100) {
		t.Fatalf("canvas rect = %v", comp.Rect)
	}

	// monitor A lands at canvas origin, monitor B at (100,50)
	assertRegion(t, comp, image.Rect(0, 0, 100, 100), red)
	assertRegion(t, comp, image.Rect(100, 50, 200, 150), green)
}

func TestComposeBackgroundFill(t *testing.T) {
	// L-shaped arrangement leaves two uncovered quadrants
	a := solidCapture(0, image.Rect(0, 0, 100, 100), red)
	b := solidCapture(1, image.Rect(100, 100, 200, 200), blue)

	comp, err := Compose([]Capture{a, b})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	assertRegion(t, comp, image.Rect(100, 0, 200, 100), black)
	assertRegion(t, comp, image.Rect(0, 100, 100, 200), black)
	assertRegion(t, comp, image.Rect(0, 0, 100, 100), red)
	assertRegion(t, comp, image.Rect(100, 100, 200, 200), blue)
}

func TestComposeSingleMonitorIdentity(t *testing.T) {
	rect := image.Rect(-640, 200, 640, 920)
	src := solidCapture(3, rect, green)
	// vary a few pixels so identity is meaningful
	src.Image.SetRGBA(0, 0, red)
	src.Image.SetRGBA(1279, 719, blue)

	comp, err := Compose([]Capture{src})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if comp.Rect != rect {
		t.Fatalf("canvas rect = %v, want %v", comp.Rect, rect)
	}
	if got := comp.Image.Bounds(); got.Dx() != 1280 || got.Dy() != 720 {
		t.Fatalf("canvas size %dx%d", got.Dx(), got.Dy())
	}
	for y := 0; y < 720; y++ {
		for x := 0; x < 1280; x++ {
			if comp.Image.RGBAAt(x, y) != src.Image.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs from source", x, y)
			}
		}
	}
}

func TestComposeOverlapLastWriteWins(t *testing.T) {
	a := solidCapture(0, image.Rect(0, 0, 100, 100), red)
	b := solidCapture(1, image.Rect(50, 0, 150, 100), blue)

	comp, err := Compose([]Capture{a, b})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	assertRegion(t, comp, image.Rect(0, 0, 50, 100), red)
	assertRegion(t, comp, image.Rect(50, 0, 150, 100), blue)
}

func TestComposeNormalizesAlpha(t *testing.T) {
	c := solidCapture(0, image.Rect(0, 0, 10, 10), color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0x00})
	comp, err := Compose([]Capture{c})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	assertRegion(t, comp, image.Rect(0, 0, 10, 10), color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xFF})
}

func TestComposeRejectsEmptyInput(t *testing.T) {
	if _, err := Compose(nil); !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("expected ErrNoMonitors, got %v", err)
	}
}

func TestComposeRejectsDimensionMismatch(t *testing.T) {
	good := solidCapture(0, image.Rect(0, 0, 100, 100), red)
	bad := solidCapture(7, image.Rect(100, 0, 200, 100), blue)
	bad.Image = image.NewRGBA(image.Rect(0, 0, 99, 100))

	_, err := Compose([]Capture{good, bad})
	var mismatch *InconsistentCaptureError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected InconsistentCaptureError, got %v", err)
	}
	if mismatch.Monitor != 7 {
		t.Fatalf("error names monitor %d, want 7", mismatch.Monitor)
	}
	if mismatch.Want != image.Pt(100, 100) || mismatch.Got != image.Pt(99, 100) {
		t.Fatalf("unexpected dimensions in error: %v", mismatch)
	}
}

func TestComposeRejectsNilImage(t *testing.T) {
	c := Capture{Monitor: Monitor{ID: 2, Rect: image.Rect(0, 0, 10, 10)}}
	_, err := Compose([]Capture{c})
	var mismatch *InconsistentCaptureError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected InconsistentCaptureError, got %v", err)
	}
	if mismatch.Got != image.Pt(0, 0) {
		t.Fatalf("got dims %v, want 0x0", mismatch.Got)
	}
}
