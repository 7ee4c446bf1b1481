// Package imageprocessor resizes uploaded images into the fixed presets the
// company profile uses. The fill strategy crops to the target aspect ratio
// around the center, then scales.
package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// Preset is a fixed output geometry for one media usage.
type Preset struct {
	Name   string
	Width  int
	Height int
}

var (
	PresetLogo   = Preset{Name: "logo", Width: 300, Height: 300}
	PresetBanner = Preset{Name: "banner", Width: 1200, Height: 400}
)

// PresetFor returns the transform preset for an upload usage, or nil when
// the usage is stored untouched (video).
func PresetFor(usage string) *Preset {
	switch usage {
	case "logo":
		return &PresetLogo
	case "banner":
		return &PresetBanner
	default:
		return nil
	}
}

// Processor applies presets to image bytes.
type Processor struct {
	quality int // JPEG encode quality, 1-100
}

func New(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Transform decodes an image (JPEG or PNG), center-crops it to the preset's
// aspect ratio, scales it to the preset size and re-encodes as JPEG.
// Returns the transformed bytes and their content type.
func (p *Processor) Transform(r io.Reader, preset Preset) ([]byte, string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	cropped := centerCrop(src, preset.Width, preset.Height)

	dst := image.NewRGBA(image.Rect(0, 0, preset.Width, preset.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}

// centerCrop returns the largest centered sub-rectangle of src matching the
// target aspect ratio.
func centerCrop(src image.Image, targetW, targetH int) image.Image {
	b := srcBounds(src)
	srcW, srcH := b.Dx(), b.Dy()

	// Compare aspect ratios without floating point: srcW/srcH vs targetW/targetH.
	if srcW*targetH > srcH*targetW {
		// Too wide: trim the sides.
		cropW := srcH * targetW / targetH
		x0 := b.Min.X + (srcW-cropW)/2
		return cropRect(src, image.Rect(x0, b.Min.Y, x0+cropW, b.Max.Y))
	}
	if srcW*targetH < srcH*targetW {
		// Too tall: trim top and bottom.
		cropH := srcW * targetH / targetW
		y0 := b.Min.Y + (srcH-cropH)/2
		return cropRect(src, image.Rect(b.Min.X, y0, b.Max.X, y0+cropH))
	}
	return src
}

func srcBounds(src image.Image) image.Rectangle {
	return src.Bounds()
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func cropRect(src image.Image, r image.Rectangle) image.Image {
	if s, ok := src.(subImager); ok {
		return s.SubImage(r)
	}
	// Fallback for decoders without SubImage support.
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, src, r, draw.Src, nil)
	return dst
}
