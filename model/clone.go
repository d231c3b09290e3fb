package model

import "slices"

// Deep copy functions for document structures. Clipboard, duplicate and
// codec base configuration all rely on copies never sharing mutable storage
// with the source.

// Clone creates a deep copy of the Document. Element identities are kept.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		Config:    d.Config.Clone(),
		Title:     d.Title.Clone(),
		Body:      cloneElements(d.Body),
		Footer:    d.Footer.Clone(),
		Bookmarks: cloneBookmarks(d.Bookmarks),
	}
}

// Clone returns deep copy of the element with the same identity.
func (e Element) Clone() Element {
	if e.Block == nil {
		return e
	}
	return Element{ID: e.ID, Block: e.Block.cloneBlock()}
}

// Copy returns deep copy of the element with new identity, suitable for
// paste and duplicate.
func (e Element) Copy() Element {
	c := e.Clone()
	c.ID = NewID()
	return c
}

func cloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	result := make([]Element, len(elements))
	for i := range elements {
		result[i] = elements[i].Clone()
	}
	return result
}

// Clone returns deep copy of the configuration.
func (c Config) Clone() Config {
	result := c
	result.EmbedFonts = cloneBoolPtr(c.EmbedFonts)
	result.CustomFonts = slices.Clone(c.CustomFonts)
	if c.Security != nil {
		s := *c.Security
		result.Security = &s
	}
	if c.PDFA != nil {
		p := *c.PDFA
		result.PDFA = &p
	}
	if c.Signature != nil {
		s := *c.Signature
		s.CertificateChain = slices.Clone(c.Signature.CertificateChain)
		result.Signature = &s
	}
	return result
}

// Clone returns deep copy of the title.
func (t *Title) Clone() *Title {
	if t == nil {
		return nil
	}
	result := *t
	result.Table = t.Table.clone()
	return &result
}

// Clone returns deep copy of the footer.
func (f *Footer) Clone() *Footer {
	if f == nil {
		return nil
	}
	result := *f
	return &result
}

func (t *Table) cloneBlock() Block { return t.clone() }

func (t *Table) clone() *Table {
	if t == nil {
		return nil
	}
	result := &Table{
		MaxColumns:   t.MaxColumns,
		Rows:         make([]Row, len(t.Rows)),
		ColumnWidths: slices.Clone(t.ColumnWidths),
		RowHeights:   slices.Clone(t.RowHeights),
		BgColor:      t.BgColor,
		TextColor:    t.TextColor,
	}
	for i := range t.Rows {
		result.Rows[i] = t.Rows[i].clone()
	}
	return result
}

func (r Row) clone() Row {
	if r.Cells == nil {
		return Row{}
	}
	cells := make([]Cell, len(r.Cells))
	for i := range r.Cells {
		cells[i] = r.Cells[i].Clone()
	}
	return Row{Cells: cells}
}

// Clone returns deep copy of the cell. Content variants are values and are
// copied by assignment.
func (c Cell) Clone() Cell {
	result := c
	result.Wrap = cloneBoolPtr(c.Wrap)
	result.Width = cloneFloatPtr(c.Width)
	result.Height = cloneFloatPtr(c.Height)
	return result
}

func (s *Spacer) cloneBlock() Block {
	result := *s
	return &result
}

func (i *Image) cloneBlock() Block {
	result := *i
	return &result
}

func (o *Opaque) cloneBlock() Block {
	return &Opaque{Type: o.Type, Raw: slices.Clone(o.Raw)}
}

func cloneBookmarks(bookmarks []Bookmark) []Bookmark {
	if bookmarks == nil {
		return nil
	}
	result := make([]Bookmark, len(bookmarks))
	for i := range bookmarks {
		result[i] = bookmarks[i]
		result[i].Children = cloneBookmarks(bookmarks[i].Children)
	}
	return result
}

func cloneBoolPtr(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneFloatPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
