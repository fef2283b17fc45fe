// Package capture saves rendered frames as PNG screenshots.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer writes screenshots into a directory.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewWriter creates a writer. Files are named <prefix>_<timestamp>.png.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next screenshot will be written to.
func (w *Writer) Filename() string {
	name := fmt.Sprintf("%s_%s.png", w.prefix, w.now().Format("2006-01-02_15-04-05.000"))
	return filepath.Join(w.dir, name)
}

// Save writes RGBA pixel rows, bottom row first as OpenGL returns them.
func (w *Writer) Save(pixels []byte, width, height int) (string, error) {
	img, err := FromGL(pixels, width, height)
	if err != nil {
		return "", err
	}

	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := w.Filename()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

// FromGL flips bottom-up RGBA rows into an image. Alpha is forced opaque,
// since the offscreen target's alpha is not meaningful.
func FromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: %dx%d with %d bytes", width, height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*row : (height-y)*row]
		dst := img.Pix[y*img.Stride : y*img.Stride+row]
		copy(dst, src)
		for x := 3; x < row; x += 4 {
			dst[x] = 255
		}
	}
	return img, nil
}
