// Package images inspects and prepares pictures before they are embedded
// into template image blocks and image cells.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned for payloads which are not a known picture format.
var ErrUnsupported = errors.New("unsupported image format")

// Info describes picture payload.
type Info struct {
	Format string // png, jpg, gif, bmp, tif, webp or svg
	MIME   string
	Width  int
	Height int
}

// IsSVG reports whether data looks like SVG document.
func IsSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<SVG"))
}

// Probe detects picture format and pixel dimensions without decoding pixels.
// SVG dimensions come from its viewBox.
func Probe(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrUnsupported
	}
	if IsSVG(data) {
		_, w, h, err := readSVG(data)
		if err != nil {
			return Info{}, fmt.Errorf("unable to parse svg: %w", err)
		}
		return Info{Format: "svg", MIME: "image/svg+xml", Width: w, Height: h}, nil
	}

	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return Info{}, ErrUnsupported
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("unable to decode %s header: %w", kind.Extension, err)
	}
	return Info{Format: kind.Extension, MIME: kind.MIME.Value, Width: cfg.Width, Height: cfg.Height}, nil
}

// DecodeData returns raw bytes of base64 payload as stored in templates.
// Optional data URL prefix ("data:image/png;base64,") is stripped.
func DecodeData(s string) ([]byte, error) {
	if rest, ok := strings.CutPrefix(strings.TrimSpace(s), "data:"); ok {
		_, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, errors.New("malformed data URL")
		}
		s = payload
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image data: %w", err)
	}
	return data, nil
}

// EncodeData returns base64 form of picture for storing in templates.
func EncodeData(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
