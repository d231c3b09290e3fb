package images

import (
	"image"
	"image/color"
	"image/draw"
)

// isGrayscale reports whether every visible pixel has equal channels. Fully
// transparent pixels are skipped, toGray paints them white.
func isGrayscale(img image.Image) bool {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	case *image.NRGBA:
		return grayPix(m.Pix, m.Stride, m.Rect.Dx(), m.Rect.Dy())
	case *image.RGBA:
		return grayPix(m.Pix, m.Stride, m.Rect.Dx(), m.Rect.Dy())
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A != 0 && (c.R != c.G || c.G != c.B) {
				return false
			}
		}
	}
	return true
}

// grayPix checks 4 byte per pixel buffer row by row.
func grayPix(pix []byte, stride, width, height int) bool {
	for y, row := 0, 0; y < height; y, row = y+1, row+stride {
		for i := row; i < row+width*4; i += 4 {
			if pix[i+3] != 0 && (pix[i] != pix[i+1] || pix[i+1] != pix[i+2]) {
				return false
			}
		}
	}
	return true
}

// toGray flattens img on white and converts it to 8 bit gray.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	flat := image.NewRGBA(b)
	draw.Draw(flat, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, b, img, b.Min, draw.Over)
	gray := image.NewGray(b)
	draw.Draw(gray, b, flat, b.Min, draw.Src)
	return gray
}
