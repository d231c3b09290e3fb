package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestSetDensityInsertsSegment(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04}

	out, err := setDensity(data, 300)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(data)+18 {
		t.Fatalf("len = %d, want %d", len(out), len(data)+18)
	}
	if !bytes.Equal(out[len(out)-4:], data[2:]) {
		t.Error("original segments must follow inserted one")
	}
	if x, y, ok := density(out); !ok || x != 300 || y != 300 {
		t.Errorf("density() = %d, %d, %v", x, y, ok)
	}
}

func TestSetDensityRewritesSegment(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01,
		0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0xFF, 0xD9}

	out, err := setDensity(data, PointsPerInch)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(data) {
		t.Fatalf("segment must be rewritten in place, len = %d", len(out))
	}
	if x, y, ok := density(out); !ok || x != PointsPerInch || y != PointsPerInch {
		t.Errorf("density() = %d, %d, %v", x, y, ok)
	}
	if _, _, ok := density(data); ok {
		t.Error("input must stay untouched")
	}
}

func TestSetDensityNotJPEG(t *testing.T) {
	for _, data := range [][]byte{nil, {0x89, 'P', 'N', 'G'}, {0xFF, 0xD8}} {
		if _, err := setDensity(data, 72); !errors.Is(err, errNotJPEG) {
			t.Errorf("setDensity(% x) error = %v", data, err)
		}
	}
}

func TestEncodeJPEG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	img.SetGray(1, 1, color.Gray{Y: 200})

	out, err := encodeJPEG(img, 80)
	if err != nil {
		t.Fatal(err)
	}
	if x, _, ok := density(out); !ok || x != PointsPerInch {
		t.Errorf("density() = %d, %v", x, ok)
	}
}
