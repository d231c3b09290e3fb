package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgFallbackSize is used for SVG without usable viewBox.
const svgFallbackSize = 300

// rasterLimit caps either side of rasterized SVG whatever the limits say,
// huge viewBox values would exhaust memory otherwise.
var rasterLimit = 8192

func readSVG(data []byte) (*oksvg.SvgIcon, int, int, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, 0, 0, err
	}
	w, h := int(math.Ceil(icon.ViewBox.W)), int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		w, h = svgFallbackSize, svgFallbackSize
	}
	return icon, w, h, nil
}

// rasterizeSVG draws SVG on white background at its intrinsic size, shrunk
// to fit into limits when it is larger.
func rasterizeSVG(data []byte, lim Limits) (image.Image, error) {
	icon, w, h, err := readSVG(data)
	if err != nil {
		return nil, err
	}
	w, h = shrink(w, h, lim.MaxWidth, lim.MaxHeight)
	w, h = shrink(w, h, rasterLimit, rasterLimit)

	icon.SetTarget(0, 0, float64(w), float64(h))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, dst, dst.Bounds())), 1.0)
	return dst, nil
}

// shrink scales w x h down keeping aspect ratio so it fits into maxW x maxH,
// zero limit is ignored. Sides are never less than 1.
func shrink(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	if scale == 1.0 {
		return w, h
	}
	return max(int(math.Round(float64(w)*scale)), 1), max(int(math.Round(float64(h)*scale)), 1)
}
