package model

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// StyleBits is bold/italic/underline mask, bit position is a StyleBit.
type StyleBits uint8

// Has reports whether bit is set.
func (s StyleBits) Has(bit StyleBit) bool {
	return s&(1<<uint(bit)) != 0
}

// Toggle flips requested bit.
func (s StyleBits) Toggle(bit StyleBit) StyleBits {
	return s ^ (1 << uint(bit))
}

// String serializes mask as three 0/1 characters, character i is bit i.
func (s StyleBits) String() string {
	var b [3]byte
	for i := range b {
		b[i] = '0'
		if s.Has(StyleBit(i)) {
			b[i] = '1'
		}
	}
	return string(b[:])
}

// Border sides in StyleDescriptor order.
const (
	BorderTop = iota
	BorderRight
	BorderBottom
	BorderLeft
)

// Props is a StyleDescriptor: font, size, style bits, alignment and four
// border flags. Serialized form is
//
//	font:size:styleBits:align:borderTop:borderRight:borderBottom:borderLeft
//
// Any non zero border part reads as set and is written back as 1.
type Props struct {
	Font    string
	Size    float64
	Style   StyleBits
	Align   Alignment
	Borders [4]bool
}

const (
	defaultFont     = "Helvetica"
	defaultFontSize = 12
)

// ParseProps converts descriptor to Props. It never fails completely: parts
// which are missing or could not be understood get defaults (the same ones
// generation service uses) and are reported in returned error.
func ParseProps(s string) (Props, error) {
	p := Props{Font: defaultFont, Size: defaultFontSize, Align: AlignmentLeft}

	parts := strings.Split(s, ":")
	part := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	var err error
	if name := part(0); name != "" {
		p.Font = name
	}
	if size := part(1); size != "" {
		if v, e := strconv.ParseFloat(size, 64); e == nil && v > 0 {
			p.Size = v
		} else {
			err = multierr.Append(err, fmt.Errorf("bad font size %q", size))
		}
	}
	if style := part(2); style != "" {
		if len(style) != 3 || strings.Trim(style, "01") != "" {
			err = multierr.Append(err, fmt.Errorf("bad style bits %q", style))
		} else {
			for i := range 3 {
				if style[i] == '1' {
					p.Style |= 1 << uint(i)
				}
			}
		}
	}
	if align := part(3); align != "" {
		if a, e := ParseAlignment(strings.ToLower(align)); e == nil {
			p.Align = a
		} else {
			err = multierr.Append(err, e)
		}
	}
	for i := range 4 {
		b := part(4 + i)
		switch b {
		case "", "0":
		case "1":
			p.Borders[i] = true
		default:
			if v, e := strconv.Atoi(b); e == nil {
				p.Borders[i] = v != 0
			} else {
				err = multierr.Append(err, fmt.Errorf("bad border flag %q", b))
			}
		}
	}
	return p, err
}

// MustProps parses descriptor ignoring problems, for literals in code and tests.
func MustProps(s string) Props {
	p, _ := ParseProps(s)
	return p
}

// String returns canonical serialized descriptor.
func (p Props) String() string {
	var sb strings.Builder
	sb.WriteString(p.Font)
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatFloat(p.Size, 'f', -1, 64))
	sb.WriteByte(':')
	sb.WriteString(p.Style.String())
	sb.WriteByte(':')
	sb.WriteString(p.Align.String())
	for _, b := range p.Borders {
		if b {
			sb.WriteString(":1")
		} else {
			sb.WriteString(":0")
		}
	}
	return sb.String()
}

// ToggleStyle returns descriptor with one style bit flipped.
func (p Props) ToggleStyle(bit StyleBit) Props {
	p.Style = p.Style.Toggle(bit)
	return p
}

// WithAlignment returns descriptor with replaced alignment.
func (p Props) WithAlignment(a Alignment) Props {
	p.Align = a
	return p
}

// WithBorders returns descriptor with border flags set from named preset.
func (p Props) WithBorders(preset BorderPreset) Props {
	switch preset {
	case BorderPresetNone:
		p.Borders = [4]bool{}
	case BorderPresetAll, BorderPresetBox:
		p.Borders = [4]bool{true, true, true, true}
	case BorderPresetBottom:
		// preset keeps the flag pattern 0001 existing templates were saved with
		p.Borders = [4]bool{false, false, false, true}
	}
	return p
}
