package model

// Defaults controls shape and style of newly created elements.
type Defaults struct {
	Font         string
	FontSize     float64
	TableRows    int
	TableColumns int
	SpacerHeight float64
	ImageWidth   float64
	ImageHeight  float64
}

// DefaultSettings returns built-in defaults.
func DefaultSettings() Defaults {
	return Defaults{
		Font:         defaultFont,
		FontSize:     defaultFontSize,
		TableRows:    3,
		TableColumns: 3,
		SpacerHeight: 20,
		ImageWidth:   200,
		ImageHeight:  150,
	}
}

// CellProps is descriptor of a blank cell: regular, left aligned, bordered.
func (d Defaults) CellProps() Props {
	return Props{
		Font:    d.Font,
		Size:    d.FontSize,
		Align:   AlignmentLeft,
		Borders: [4]bool{true, true, true, true},
	}
}

// BlankCell returns cell with empty text and default style.
func (d Defaults) BlankCell() Cell {
	return Cell{Props: d.CellProps(), Content: Text("")}
}

// BlankRow returns row of n blank cells.
func (d Defaults) BlankRow(n int) Row {
	cells := make([]Cell, max(n, 0))
	for i := range cells {
		cells[i] = d.BlankCell()
	}
	return Row{Cells: cells}
}

// NewTable returns table of blank cells, dimensions below 1 are raised to 1.
func (d Defaults) NewTable(rows, cols int) *Table {
	rows, cols = max(rows, 1), max(cols, 1)
	t := &Table{MaxColumns: cols, Rows: make([]Row, rows)}
	for i := range t.Rows {
		t.Rows[i] = d.BlankRow(cols)
	}
	return t
}

// NewBlock returns default populated body block of requested kind or nil.
func (d Defaults) NewBlock(k Kind) Block {
	switch k {
	case KindTable:
		return d.NewTable(d.TableRows, d.TableColumns)
	case KindSpacer:
		return &Spacer{Height: d.SpacerHeight}
	case KindImage:
		return &Image{Width: d.ImageWidth, Height: d.ImageHeight}
	}
	return nil
}

// NewTitle returns default title.
func (d Defaults) NewTitle() *Title {
	p := Props{Font: d.Font, Size: 18, Style: 1 << StyleBitBold, Align: AlignmentCenter}
	return &Title{Props: p, TextProps: p, Text: "Document Title"}
}

// NewFooter returns default footer.
func (d Defaults) NewFooter() *Footer {
	return &Footer{Props: Props{Font: d.Font, Size: 10, Align: AlignmentCenter}, Text: "Page footer"}
}
