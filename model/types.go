// Package model defines the in-memory template document: page configuration,
// optional title, ordered body elements, optional footer and bookmark
// outline. The model is what the editor mutates and what the codec maps to and
// from the wire JSON.
package model

import (
	"fmt"
)

// Document is the complete editable template. Exactly one Document is live
// per editing session.
type Document struct {
	Config    Config
	Title     *Title
	Body      []Element
	Footer    *Footer
	Bookmarks []Bookmark
}

// New returns empty document with provided page configuration.
func New(cfg Config) *Document {
	return &Document{Config: cfg}
}

// Element is a body block together with its stable identity. Identity does
// not depend on position and survives any reordering.
type Element struct {
	ID    ID
	Block Block
}

// Kind returns kind of the wrapped block.
func (e Element) Kind() Kind {
	if e.Block == nil {
		return KindUnknown
	}
	return e.Block.Kind()
}

// NewElement wraps block with freshly allocated identity.
func NewElement(b Block) Element {
	return Element{ID: NewID(), Block: b}
}

// Block is one of *Table, *Spacer, *Image or *Opaque.
type Block interface {
	Kind() Kind
	cloneBlock() Block
}

// Table is a rectangular grid of cells. Every row must hold exactly
// MaxColumns cells, there is at least one row and one column.
type Table struct {
	MaxColumns   int
	Rows         []Row
	ColumnWidths []float64
	RowHeights   []float64
	BgColor      string
	TextColor    string
}

func (*Table) Kind() Kind { return KindTable }

// Cell returns pointer to the cell at requested position.
func (t *Table) Cell(row, col int) (*Cell, error) {
	if row < 0 || row >= len(t.Rows) {
		return nil, fmt.Errorf("row %d of %d: %w", row, len(t.Rows), ErrOutOfRange)
	}
	if col < 0 || col >= len(t.Rows[row].Cells) {
		return nil, fmt.Errorf("column %d of %d: %w", col, len(t.Rows[row].Cells), ErrOutOfRange)
	}
	return &t.Rows[row].Cells[col], nil
}

// Rectangular reports whether table shape satisfies grid invariant.
func (t *Table) Rectangular() bool {
	if t.MaxColumns < 1 || len(t.Rows) < 1 {
		return false
	}
	for _, r := range t.Rows {
		if len(r.Cells) != t.MaxColumns {
			return false
		}
	}
	return true
}

// Row is a single table row.
type Row struct {
	Cells []Cell
}

// Spacer is vertical space between elements.
type Spacer struct {
	Height float64
}

func (*Spacer) Kind() Kind { return KindSpacer }

// Image is a standalone picture in the body. Data is base64 encoded.
type Image struct {
	Width  float64
	Height float64
	Name   string
	Data   string
	Link   string
}

func (*Image) Kind() Kind { return KindImage }

// Opaque keeps body entry which could not be recognized when decoding. It is
// carried through editing untouched and emitted back verbatim.
type Opaque struct {
	Type string
	Raw  []byte
}

func (*Opaque) Kind() Kind { return KindUnknown }

// Title is the document heading. It may embed a single row table for layout.
type Title struct {
	Props     Props
	Text      string
	TextProps Props
	Table     *Table
	BgColor   string
	TextColor string
	Link      string
}

// Footer is repeated at the bottom of every page.
type Footer struct {
	Props Props
	Text  string
	Link  string
}

// Bookmark is an outline entry. Order of siblings is significant.
type Bookmark struct {
	Title    string
	Dest     string
	URL      string
	Page     int
	Y        float64
	Open     bool
	Children []Bookmark
}

// Item is a read-only view of an element in display order.
type Item struct {
	ID    ID
	Kind  Kind
	Index int // position in Body, -1 for title and footer
}

// Flatten returns document elements in display order: title, body, footer.
func (d *Document) Flatten() []Item {
	items := make([]Item, 0, len(d.Body)+2)
	if d.Title != nil {
		items = append(items, Item{ID: TitleID, Kind: KindTitle, Index: -1})
	}
	for i, e := range d.Body {
		items = append(items, Item{ID: e.ID, Kind: e.Kind(), Index: i})
	}
	if d.Footer != nil {
		items = append(items, Item{ID: FooterID, Kind: KindFooter, Index: -1})
	}
	return items
}

// IndexOf returns position of element with given id in Body or -1.
func (d *Document) IndexOf(id ID) int {
	for i := range d.Body {
		if d.Body[i].ID == id {
			return i
		}
	}
	return -1
}

// SetTitle installs title, refusing to replace existing one.
func (d *Document) SetTitle(t *Title) error {
	if d.Title != nil {
		return fmt.Errorf("title: %w", ErrAlreadyExists)
	}
	d.Title = t
	return nil
}

// SetFooter installs footer, refusing to replace existing one.
func (d *Document) SetFooter(f *Footer) error {
	if d.Footer != nil {
		return fmt.Errorf("footer: %w", ErrAlreadyExists)
	}
	d.Footer = f
	return nil
}

// Insert puts element at position i, values outside of range append.
func (d *Document) Insert(i int, e Element) {
	if i < 0 || i >= len(d.Body) {
		d.Body = append(d.Body, e)
		return
	}
	d.Body = append(d.Body, Element{})
	copy(d.Body[i+1:], d.Body[i:])
	d.Body[i] = e
}

// Remove deletes element at position i and returns it.
func (d *Document) Remove(i int) (Element, error) {
	if i < 0 || i >= len(d.Body) {
		return Element{}, fmt.Errorf("element %d of %d: %w", i, len(d.Body), ErrOutOfRange)
	}
	e := d.Body[i]
	d.Body = append(d.Body[:i], d.Body[i+1:]...)
	return e, nil
}

// Tables returns all tables of the document including title layout table,
// in display order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	if d.Title != nil && d.Title.Table != nil {
		tables = append(tables, d.Title.Table)
	}
	for _, e := range d.Body {
		if t, ok := e.Block.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}
