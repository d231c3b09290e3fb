package model

// Content is what a table cell holds. It is always exactly one of Text,
// CellImage, FormField, Checkbox, Radio or Hyperlink. All variants are values
// so copying a Cell never shares content.
type Content interface {
	// Variant names content for logs and debug output.
	Variant() string
	isContent()
}

// Text is plain cell text.
type Text string

// CellImage is a picture inside a cell. Data is base64 encoded.
type CellImage struct {
	Name   string
	Data   string
	Width  float64
	Height float64
}

// FormField is an interactive AcroForm field filled by the generation service.
type FormField struct {
	Kind      FormFieldKind
	Name      string
	Value     string
	Checked   bool
	GroupName string
	Shape     string
}

// Checkbox is a static (non interactive) check box.
type Checkbox bool

// Radio is a static (non interactive) radio mark.
type Radio bool

// Hyperlink is text pointing to external URL.
type Hyperlink struct {
	Text string
	URL  string
}

func (Text) Variant() string      { return "text" }
func (CellImage) Variant() string { return "image" }
func (FormField) Variant() string { return "form_field" }
func (Checkbox) Variant() string  { return "checkbox" }
func (Radio) Variant() string     { return "radio" }
func (Hyperlink) Variant() string { return "hyperlink" }

func (Text) isContent()      {}
func (CellImage) isContent() {}
func (FormField) isContent() {}
func (Checkbox) isContent()  {}
func (Radio) isContent()     {}
func (Hyperlink) isContent() {}

// Cell is a single grid position: style, optional wrap flag and exactly one
// content variant. Nil Content reads as blank text.
type Cell struct {
	Props     Props
	Wrap      *bool
	Content   Content
	Width     *float64
	Height    *float64
	BgColor   string
	TextColor string
}

// Value returns cell content, never nil.
func (c *Cell) Value() Content {
	if c.Content == nil {
		return Text("")
	}
	return c.Content
}

// Text returns textual part of the cell if content has one.
func (c *Cell) Text() string {
	switch v := c.Value().(type) {
	case Text:
		return string(v)
	case Hyperlink:
		return v.Text
	}
	return ""
}

// Wrapped reports effective wrap flag.
func (c *Cell) Wrapped() bool {
	return c.Wrap != nil && *c.Wrap
}
