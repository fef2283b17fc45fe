// Package texture decodes images and uploads them as GL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for images this package cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Decode decodes an image, choosing the decoder from name's extension.
func Decode(name string, data []byte) (image.Image, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".tga":
		return DecodeTGA(data)
	case ".bmp":
		return bmp.Decode(bytes.NewReader(data))
	case ".png", ".jpg", ".jpeg":
		img, _, err := image.Decode(bytes.NewReader(data))
		return img, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ToRGBA converts img to tightly packed RGBA with its origin at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
