package display

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	payload, err := Encode(img, "png", nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if payload.MimeType != "image/png" {
		t.Fatalf("mime = %s", payload.MimeType)
	}
	decoded, err := png.Decode(bytes.NewReader(payload.Data))
	if err != nil {
		t.Fatalf("decode round trip: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 4 {
		t.Fatalf("round trip size %v", decoded.Bounds())
	}
}

func TestEncodeDefaultsToPNG(t *testing.T) {
	payload, err := Encode(image.NewRGBA(image.Rect(0, 0, 2, 2)), "", nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if payload.MimeType != "image/png" {
		t.Fatalf("mime = %s", payload.MimeType)
	}
}

func TestEncodeJPEGQuality(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 31)
	}

	low := 10
	high := 95
	lowPayload, err := Encode(img, "jpg", &low)
	if err != nil {
		t.Fatalf("Encode low: %v", err)
	}
	highPayload, err := Encode(img, "jpeg", &high)
	if err != nil {
		t.Fatalf("Encode high: %v", err)
	}
	if lowPayload.MimeType != "image/jpeg" || highPayload.MimeType != "image/jpeg" {
		t.Fatalf("mime types %s / %s", lowPayload.MimeType, highPayload.MimeType)
	}
	if len(lowPayload.Data) >= len(highPayload.Data) {
		t.Fatalf("quality 10 (%d bytes) not smaller than quality 95 (%d bytes)",
			len(lowPayload.Data), len(highPayload.Data))
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	if _, err := Encode(image.NewRGBA(image.Rect(0, 0, 1, 1)), "webp", nil); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestShrink(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1000, 500))

	small := Shrink(img, 200)
	if small.Bounds().Dx() != 200 {
		t.Fatalf("width = %d, want 200", small.Bounds().Dx())
	}
	if small.Bounds().Dy() != 100 {
		t.Fatalf("height = %d, want 100 (aspect preserved)", small.Bounds().Dy())
	}

	if same := Shrink(img, 2000); same != img {
		t.Fatal("image narrower than max width should pass through")
	}
	if same := Shrink(img, 0); same != img {
		t.Fatal("zero max width should pass through")
	}
}
