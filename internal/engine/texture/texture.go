package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/logger"
)

// CubeFaces lists cubemap face files in GL target order, starting at
// TEXTURE_CUBE_MAP_POSITIVE_X.
var CubeFaces = [6]string{"posx", "negx", "posy", "negy", "posz", "negz"}

// CubemapPaths returns the six face paths of the cubemap stored in dir.
func CubemapPaths(dir, ext string) [6]string {
	var out [6]string
	for i, face := range CubeFaces {
		out[i] = filepath.Join(dir, face+ext)
	}
	return out
}

// fallbackPixel is the colour of textures that failed to load.
var fallbackPixel = [4]byte{128, 128, 128, 255}

// Loader reads textures relative to a directory. Failures are logged and
// replaced by 1x1 grey textures so the scene still renders.
type Loader struct {
	dir      string
	log      *zap.Logger
	textures []uint32
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, log: logger.Named("texture")}
}

// Load2D loads a repeating, mipmapped 2D texture.
func (l *Loader) Load2D(name string) uint32 {
	path := filepath.Join(l.dir, name)
	img, err := readImage(path)
	if err != nil {
		l.log.Error("texture unavailable, using fallback", zap.String("path", path), zap.Error(err))
		return l.track(upload2D(solid()))
	}
	l.log.Debug("texture loaded", zap.String("path", path), zap.Int("width", img.Rect.Dx()), zap.Int("height", img.Rect.Dy()))
	return l.track(upload2D(img))
}

// LoadCubemap loads the six jpg faces under dir (relative to the loader).
func (l *Loader) LoadCubemap(dir string) uint32 {
	paths := CubemapPaths(filepath.Join(l.dir, dir), ".jpg")

	var faces [6]*image.RGBA
	for i, path := range paths {
		img, err := readImage(path)
		if err != nil {
			l.log.Error("cubemap face unavailable, using fallback", zap.String("path", path), zap.Error(err))
			for j := range faces {
				faces[j] = solid()
			}
			break
		}
		faces[i] = img
	}
	return l.track(uploadCubemap(faces))
}

// Destroy deletes every texture the loader created.
func (l *Loader) Destroy() {
	if len(l.textures) > 0 {
		gl.DeleteTextures(int32(len(l.textures)), &l.textures[0])
		l.textures = nil
	}
}

func (l *Loader) track(tex uint32) uint32 {
	l.textures = append(l.textures, tex)
	return tex
}

func readImage(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return ToRGBA(img), nil
}

func solid() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, fallbackPixel[:])
	return img
}

func upload2D(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func uploadCubemap(faces [6]*image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i, img := range faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA8,
			int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return tex
}
