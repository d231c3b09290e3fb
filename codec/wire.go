package codec

import (
	"encoding/json"

	"tpledit/model"
)

// Wire shapes of the template JSON. Canonical encoding uses only wireDocument
// and what it references, the rest exist to read older templates.

type wireDocument struct {
	Config    model.Config   `json:"config"`
	Title     *wireTitle     `json:"title,omitempty"`
	Elements  []any          `json:"elements"`
	Footer    *wireFooter    `json:"footer,omitempty"`
	Bookmarks []wireBookmark `json:"bookmarks,omitempty"`
}

// wireSource is every top level key decoder understands.
type wireSource struct {
	Config    json.RawMessage   `json:"config"`
	Title     *wireTitle        `json:"title"`
	Elements  []json.RawMessage `json:"elements"`
	Content   []json.RawMessage `json:"content"`
	Tables    []json.RawMessage `json:"table"`
	Spacers   []json.RawMessage `json:"spacer"`
	Images    []json.RawMessage `json:"image"`
	Footer    *wireFooter       `json:"footer"`
	Bookmarks []wireBookmark    `json:"bookmarks"`
}

// wireConfigExtras are config keys which do not map one to one on
// model.Config.
type wireConfigExtras struct {
	EmbedStandardFonts *bool          `json:"embedStandardFonts"`
	Bookmarks          []wireBookmark `json:"bookmarks"`
}

type wireElement struct {
	Type   string      `json:"type"`
	Table  *wireTable  `json:"table,omitempty"`
	Spacer *wireSpacer `json:"spacer,omitempty"`
	Image  *wireImage  `json:"image,omitempty"`
}

// wireEntry is a body entry in any of the accepted shapes: embedded payload,
// reference into split arrays or bare untyped block.
type wireEntry struct {
	Type   *string         `json:"type"`
	Index  *int            `json:"index"`
	Table  json.RawMessage `json:"table"`
	Spacer json.RawMessage `json:"spacer"`
	Image  json.RawMessage `json:"image"`

	MaxColumns json.RawMessage `json:"maxcolumns"`
	Rows       json.RawMessage `json:"rows"`
	Height     json.RawMessage `json:"height"`
	Width      json.RawMessage `json:"width"`
	ImageData  json.RawMessage `json:"imagedata"`
	ImageName  json.RawMessage `json:"imagename"`
}

type wireTitle struct {
	Props     string     `json:"props"`
	Text      string     `json:"text"`
	TextProps string     `json:"textprops,omitempty"`
	Table     *wireTable `json:"table,omitempty"`
	BgColor   string     `json:"bgcolor,omitempty"`
	TextColor string     `json:"textcolor,omitempty"`
	Link      string     `json:"link,omitempty"`
}

type wireFooter struct {
	Props string `json:"props"`
	Font  string `json:"font,omitempty"`
	Text  string `json:"text"`
	Link  string `json:"link,omitempty"`
}

type wireTable struct {
	MaxColumns   int       `json:"maxcolumns"`
	Rows         []wireRow `json:"rows"`
	ColumnWidths []float64 `json:"columnwidths,omitempty"`
	RowHeights   []float64 `json:"rowheights,omitempty"`
	BgColor      string    `json:"bgcolor,omitempty"`
	TextColor    string    `json:"textcolor,omitempty"`
}

type wireRow struct {
	Row []wireCell `json:"row"`
}

type wireCell struct {
	Props     string         `json:"props"`
	Text      *string        `json:"text,omitempty"`
	Chequebox *bool          `json:"chequebox,omitempty"`
	Checkbox  *bool          `json:"checkbox,omitempty"`
	Radio     *bool          `json:"radio,omitempty"`
	Image     *wireImage     `json:"image,omitempty"`
	FormField *wireFormField `json:"form_field,omitempty"`
	Link      string         `json:"link,omitempty"`
	Wrap      *bool          `json:"wrap,omitempty"`
	Width     *float64       `json:"width,omitempty"`
	Height    *float64       `json:"height,omitempty"`
	BgColor   string         `json:"bgcolor,omitempty"`
	TextColor string         `json:"textcolor,omitempty"`
}

type wireFormField struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Value     string `json:"value,omitempty"`
	Checked   bool   `json:"checked,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	Shape     string `json:"shape,omitempty"`
}

type wireSpacer struct {
	Height float64 `json:"height"`
}

type wireImage struct {
	ImageName string  `json:"imagename"`
	ImageData string  `json:"imagedata"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Link      string  `json:"link,omitempty"`
}

type wireBookmark struct {
	Title    string         `json:"title"`
	Dest     string         `json:"dest,omitempty"`
	URL      string         `json:"url,omitempty"`
	Page     int            `json:"page,omitempty"`
	Y        float64        `json:"y,omitempty"`
	Open     bool           `json:"open,omitempty"`
	Children []wireBookmark `json:"children,omitempty"`
}
