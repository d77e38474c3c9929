package display

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/nfnt/resize"
)

const defaultJPEGQuality = 90

// Payload is an encoded image ready to hand to a client.
type Payload struct {
	Data     []byte
	MimeType string
}

// Encode serializes an image as PNG (the default) or JPEG. The quality
// pointer only applies to JPEG; nil means the default.
func Encode(img image.Image, format string, quality *int) (*Payload, error) {
	var buf bytes.Buffer
	switch normalizeFormat(format) {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return &Payload{Data: buf.Bytes(), MimeType: "image/png"}, nil
	case "jpeg":
		q := defaultJPEGQuality
		if quality != nil {
			q = *quality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		return &Payload{Data: buf.Bytes(), MimeType: "image/jpeg"}, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q; use png or jpeg", format)
	}
}

// Shrink downscales an image to at most maxWidth pixels wide, preserving the
// aspect ratio. Images already narrow enough pass through untouched.
func Shrink(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	return resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
}

func normalizeFormat(format string) string {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "", "png":
		return "png"
	case "jpeg", "jpg":
		return "jpeg"
	default:
		return format
	}
}
