// Package imaging loads raster images and re-encodes them as PNG for the
// clipboard. Supported inputs are PNG, JPEG, BMP and GIF; animated GIFs are
// collapsed to their first frame.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"copybuffer/pkg/errors"
	"copybuffer/pkg/logger"

	_ "golang.org/x/image/bmp"
)

// LoadPNG decodes the image at path and returns it re-encoded as PNG bytes.
// Decoding uses whichever registered codec matches the file contents, so a
// mislabelled extension still decodes as long as the bytes are a supported
// format.
func LoadPNG(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, errors.NewWithError(errors.ExitCodeFileOperation,
			fmt.Sprintf("failed to open image '%s'", path), err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Underlying: err}
	}

	logger.Debug().Str("path", path).Str("format", format).Msg("decoded image")

	// GIF frames may carry a palette and partial-frame disposal; flatten to
	// an opaque RGBA canvas so the PNG round-trip is well defined.
	if format == "gif" {
		img = flatten(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.NewWithError(errors.ExitCodeClipboard,
			fmt.Sprintf("failed to encode image '%s' as PNG", path), err)
	}
	return buf.Bytes(), nil
}

func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Over)
	return canvas
}

// NotFoundError marks an image path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("image '%s' not found", e.Path)
}

// DecodeError marks a file that could not be decoded as a supported image.
type DecodeError struct {
	Path       string
	Underlying error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image '%s': %v", e.Path, e.Underlying)
}

func (e *DecodeError) Unwrap() error {
	return e.Underlying
}
