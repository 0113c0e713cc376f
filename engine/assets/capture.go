package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/glsketch/engine/gfx"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// CaptureFrame reads the w x h framebuffer and flips it from OpenGL's
// bottom-left origin to the top-left origin image.Image expects.
func CaptureFrame(ctx gfx.Context, w, h int) *image.RGBA {
	pix := ctx.ReadPixels(0, 0, int32(w), int32(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	row := w * 4
	for y := 0; y < h; y++ {
		src := pix[(h-1-y)*row : (h-y)*row]
		copy(img.Pix[y*img.Stride:y*img.Stride+row], src)
	}
	return img
}

// SaveImage writes img to path as PNG, or BMP when the extension is .bmp.
// A scale other than 1 resamples the image first.
func SaveImage(path string, img image.Image, scale float64) error {
	if scale > 0 && scale != 1 {
		img = resize(img, scale)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func resize(img image.Image, scale float64) *image.RGBA {
	b := img.Bounds()
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
