package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

// Textures larger than this on either side get downscaled before upload
const maxTextureDim = 2048

// TextureManager loads textures and caches them by path, so assets shared
// between bodies (both atmospheres use the same cloud map) are decoded and
// uploaded once.
type TextureManager struct {
	textures map[string]uint32
}

func NewTextureManager() *TextureManager {
	return &TextureManager{textures: make(map[string]uint32)}
}

// Load returns the GL texture for path, loading it on first use
func (tm *TextureManager) Load(path string) (uint32, error) {
	if id, ok := tm.textures[path]; ok {
		return id, nil
	}

	id, err := loadTexture(path)
	if err != nil {
		return 0, err
	}
	tm.textures[path] = id
	return id, nil
}

// Release deletes all loaded textures
func (tm *TextureManager) Release() {
	for path, id := range tm.textures {
		gl.DeleteTextures(1, &id)
		delete(tm.textures, path)
	}
}

func loadTexture(path string) (uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{0, 0}, draw.Src)
	rgba = downscale(rgba, maxTextureDim)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}

// downscale resamples img so neither side exceeds maxDim, preserving aspect
// ratio. Images already within bounds are returned unchanged.
func downscale(img *image.RGBA, maxDim int) *image.RGBA {
	w := img.Rect.Size().X
	h := img.Rect.Size().Y
	if w <= maxDim && h <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
