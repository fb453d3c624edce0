package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Rotate rotates the image clockwise by deg, which must be 0, 90, 180,
// or 270. Rotation by 0 returns the source image unchanged.
func Rotate(src image.Image, deg int) (image.Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch deg {
	case 0:
		return src, nil

	case 90:
		dst := image.NewRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(h-1-y, x, src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
		return dst, nil

	case 180:
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(w-1-x, h-1-y, src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
		return dst, nil

	case 270:
		dst := image.NewRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(y, w-1-x, src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("rotation must be 0, 90, 180, or 270, got %d", deg)
	}
}

// CropRight removes a strip of the given width fraction from the right
// edge. A ratio of 0 returns the source image unchanged; ratios outside
// [0, 1) are treated as 0 (Options.Validate rejects them earlier).
func CropRight(src image.Image, ratio float64) image.Image {
	if ratio <= 0 || ratio >= 1 {
		return src
	}

	b := src.Bounds()
	keep := int(float64(b.Dx()) * (1 - ratio))
	if keep < 1 {
		keep = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, keep, b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// capSize downscales the image so that its longer edge does not exceed
// maxDim pixels. Images within the cap (or maxDim <= 0) pass through
// unchanged.
func capSize(src image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return src
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= maxDim {
		return src
	}

	scale := float64(maxDim) / float64(longer)
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// EncodePNG encodes the image as PNG for handing to the OCR engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
