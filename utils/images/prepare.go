package images

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Limits controls how pictures are prepared for embedding.
type Limits struct {
	MaxWidth     int  // 0 means unlimited
	MaxHeight    int  // 0 means unlimited
	JPEGQuality  int  // used when JPEG has to be re-encoded
	RasterizeSVG bool // replace SVG with PNG, shrunk to limits
	Grayscale    bool // store grayscale pictures as 8 bit gray
}

// passthrough lists formats generator embeds as is.
func passthrough(format string) bool {
	return format == "png" || format == "jpg" || format == "svg"
}

// Prepare returns picture data ready to be stored in template. Data is left
// intact when format is accepted by generator and no limit applies,
// everything else is re-encoded as PNG, or JPEG for JPEG sources.
func Prepare(data []byte, lim Limits, log *zap.Logger) ([]byte, Info, error) {
	info, err := Probe(data)
	if err != nil {
		return nil, Info{}, err
	}

	if info.Format == "svg" {
		if !lim.RasterizeSVG {
			return data, info, nil
		}
		img, err := rasterizeSVG(data, lim)
		if err != nil {
			return nil, Info{}, fmt.Errorf("unable to rasterize svg: %w", err)
		}
		log.Debug("SVG rasterized", zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
		return encode(img, "png", lim, log)
	}

	tooBig := (lim.MaxWidth > 0 && info.Width > lim.MaxWidth) || (lim.MaxHeight > 0 && info.Height > lim.MaxHeight)
	if passthrough(info.Format) && !tooBig && !lim.Grayscale {
		return data, info, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, Info{}, fmt.Errorf("unable to decode %s: %w", info.Format, err)
	}

	changed := !passthrough(info.Format)
	if tooBig {
		w, h := lim.MaxWidth, lim.MaxHeight
		if w <= 0 {
			w = info.Width
		}
		if h <= 0 {
			h = info.Height
		}
		img = imaging.Fit(img, w, h, imaging.Lanczos)
		log.Debug("Image downscaled",
			zap.String("format", info.Format),
			zap.Int("from-width", info.Width), zap.Int("from-height", info.Height),
			zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
		changed = true
	}
	if lim.Grayscale {
		if _, gray := img.(*image.Gray); !gray && isGrayscale(img) {
			img = toGray(img)
			changed = true
		}
	}
	if !changed {
		return data, info, nil
	}

	format := "png"
	if info.Format == "jpg" {
		format = "jpg"
	}
	return encode(img, format, lim, log)
}

func encode(img image.Image, format string, lim Limits, log *zap.Logger) ([]byte, Info, error) {
	info := Info{Format: format, Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}

	var data []byte
	switch format {
	case "jpg":
		q := lim.JPEGQuality
		if q <= 0 || q > 100 {
			q = 85
		}
		out, err := encodeJPEG(img, q)
		if err != nil {
			return nil, Info{}, fmt.Errorf("unable to encode jpeg: %w", err)
		}
		data, info.MIME = out, "image/jpeg"
	default:
		buf := new(bytes.Buffer)
		if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, Info{}, fmt.Errorf("unable to encode png: %w", err)
		}
		data, info.MIME = buf.Bytes(), "image/png"
	}
	log.Debug("Image re-encoded", zap.String("format", format), zap.Int("size", len(data)))
	return data, info, nil
}
