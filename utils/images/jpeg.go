package images

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// PointsPerInch is density at which one pixel maps to one PDF point.
const PointsPerInch = 72

const (
	markerSOI  = 0xD8
	markerAPP0 = 0xE0
	unitsDPI   = 1
)

var errNotJPEG = errors.New("not a jpeg")

// encodeJPEG encodes picture and stamps density so generator places it one
// pixel per point.
func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return setDensity(buf.Bytes(), PointsPerInch)
}

// setDensity writes density in dots per inch into JFIF APP0 segment. Segment
// is inserted right after SOI when absent, Go encoder never writes it.
func setDensity(data []byte, dpi uint16) ([]byte, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, errNotJPEG
	}

	if data[2] == 0xFF && data[3] == markerAPP0 {
		// FF E0 len(2) "JFIF\0" ver(2) units x(2) y(2)
		if len(data) < 18 || !bytes.Equal(data[6:11], []byte("JFIF\x00")) {
			return data, nil
		}
		out := bytes.Clone(data)
		out[13] = unitsDPI
		binary.BigEndian.PutUint16(out[14:], dpi)
		binary.BigEndian.PutUint16(out[16:], dpi)
		return out, nil
	}

	seg := make([]byte, 0, 18)
	seg = append(seg, 0xFF, markerAPP0, 0x00, 0x10)
	seg = append(seg, "JFIF\x00"...)
	seg = append(seg, 0x01, 0x02, unitsDPI)
	seg = binary.BigEndian.AppendUint16(seg, dpi)
	seg = binary.BigEndian.AppendUint16(seg, dpi)
	seg = append(seg, 0x00, 0x00) // no thumbnail

	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:2]...)
	out = append(out, seg...)
	return append(out, data[2:]...), nil
}

// density returns JFIF density of jpeg data, ok is false when it has no
// JFIF segment or density is not in dots per inch.
func density(data []byte) (x, y uint16, ok bool) {
	if len(data) < 18 || data[2] != 0xFF || data[3] != markerAPP0 || !bytes.Equal(data[6:11], []byte("JFIF\x00")) {
		return 0, 0, false
	}
	if data[13] != unitsDPI {
		return 0, 0, false
	}
	return binary.BigEndian.Uint16(data[14:]), binary.BigEndian.Uint16(data[16:]), true
}
