package model

//go:generate go tool go-enum --marshal --names

// Kind of document element.
// ENUM(title, table, spacer, image, footer, unknown)
type Kind string

// Horizontal text alignment inside a StyleDescriptor.
// ENUM(left, center, right)
type Alignment string

// Style bit position inside a StyleDescriptor.
// ENUM(bold, italic, underline)
type StyleBit int

// Named border presets applied to the four border flags.
// ENUM(none, all, box, bottom)
type BorderPreset string

// Cell field variants which could be inserted into a table cell.
// ENUM(checkbox, checkbox_simple, text_input, radio, radio_simple, image, hyperlink)
type FieldKind string

// Kind of interactive form field as understood by the generation service.
// ENUM(checkbox, radio, text)
type FormFieldKind string

// Direction of single step element movement.
// ENUM(up, down)
type Direction string

// Singleton reports whether at most one element of this kind may exist.
func (k Kind) Singleton() bool {
	return k == KindTitle || k == KindFooter
}

// Body reports whether elements of this kind live in the ordered body list.
func (k Kind) Body() bool {
	return k == KindTable || k == KindSpacer || k == KindImage
}
