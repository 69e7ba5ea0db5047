package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// blankThreshold classifies a channel as "background" when it stays at or
// above this value, so anti-aliased near-white stroke edges count as blank.
const blankThreshold = 240

// Normalize resamples src into a fixed size x size raster and classifies
// blankness. The target is white-filled before pasting the resample, so the
// result never contains transparent pixels regardless of resampling
// artifacts. Lanczos is deterministic for a fixed input.
func Normalize(src image.Image, size int) (*image.NRGBA, bool) {
	if size <= 0 {
		size = DefaultOutputSize
	}
	dst := imaging.New(size, size, color.White)
	resized := imaging.Resize(src, size, size, imaging.Lanczos)
	dst = imaging.Overlay(dst, resized, image.Pt(0, 0), 1.0)
	return dst, isBlank(dst)
}

// isBlank scans every pixel and exits on the first channel that falls below
// the threshold.
func isBlank(img *image.NRGBA) bool {
	bounds := img.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		i := y * img.Stride
		for x := 0; x < bounds.Dx(); x++ {
			if img.Pix[i] < blankThreshold || img.Pix[i+1] < blankThreshold || img.Pix[i+2] < blankThreshold {
				return false
			}
			i += 4
		}
	}
	return true
}

// EncodePNG serializes a normalized raster to a PNG payload.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
