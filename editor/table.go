package editor

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"tpledit/model"
)

// table returns grid of the element. Title layout table is only returned
// when withTitle is set, its shape is limited to a single row.
func (e *Editor) table(t target, withTitle bool) (*model.Table, error) {
	switch t.kind {
	case model.KindTable:
		return e.doc.Body[t.index].Block.(*model.Table), nil
	case model.KindTitle:
		if !withTitle {
			return nil, fmt.Errorf("row operation on title table: %w", ErrUnsupported)
		}
		if e.doc.Title.Table == nil {
			return nil, fmt.Errorf("title has no table: %w", ErrNotFound)
		}
		return e.doc.Title.Table, nil
	}
	return nil, fmt.Errorf("table operation on %s: %w", t.kind, ErrUnsupported)
}

func (e *Editor) resolveTable(h string, withTitle bool) (*model.Table, error) {
	t, err := e.resolve(h)
	if err != nil {
		return nil, err
	}
	return e.table(t, withTitle)
}

func cell(tbl *model.Table, row, col int) (*model.Cell, error) {
	c, err := tbl.Cell(row, col)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return c, nil
}

// modifyCell applies fn to a single cell of a table or title table.
func (e *Editor) modifyCell(h string, row, col int, fn func(c *model.Cell)) error {
	tbl, err := e.resolveTable(h, true)
	if err != nil {
		return err
	}
	c, err := cell(tbl, row, col)
	if err != nil {
		return err
	}
	fn(c)
	e.changed()
	return nil
}

// AddRow appends blank row.
func (e *Editor) AddRow(h string) error {
	tbl, err := e.resolveTable(h, false)
	if err != nil {
		return err
	}
	tbl.Rows = append(tbl.Rows, e.defaults.BlankRow(tbl.MaxColumns))
	if n := len(tbl.RowHeights); n > 0 {
		tbl.RowHeights = append(tbl.RowHeights, tbl.RowHeights[n-1])
	}
	e.changed()
	return nil
}

// RemoveRow removes last row, table always keeps at least one.
func (e *Editor) RemoveRow(h string) error {
	tbl, err := e.resolveTable(h, false)
	if err != nil {
		return err
	}
	return e.deleteRow(tbl, len(tbl.Rows)-1)
}

// DeleteRow removes row at index, table always keeps at least one.
func (e *Editor) DeleteRow(h string, row int) error {
	tbl, err := e.resolveTable(h, false)
	if err != nil {
		return err
	}
	return e.deleteRow(tbl, row)
}

func (e *Editor) deleteRow(tbl *model.Table, row int) error {
	if len(tbl.Rows) <= 1 {
		e.noop("delete row", "last row", zap.Int("row", row))
		return nil
	}
	if row < 0 || row >= len(tbl.Rows) {
		return fmt.Errorf("row %d of %d: %w", row, len(tbl.Rows), ErrInvalidArgument)
	}
	tbl.Rows = slices.Delete(tbl.Rows, row, row+1)
	if row < len(tbl.RowHeights) {
		tbl.RowHeights = slices.Delete(tbl.RowHeights, row, row+1)
	}
	e.lineRemoved(tbl, row, -1)
	e.dropStaleCell()
	e.changed()
	return nil
}

// AddColumn appends blank cell to every row.
func (e *Editor) AddColumn(h string) error {
	tbl, err := e.resolveTable(h, true)
	if err != nil {
		return err
	}
	for i := range tbl.Rows {
		tbl.Rows[i].Cells = append(tbl.Rows[i].Cells, e.defaults.BlankCell())
	}
	tbl.MaxColumns++
	if n := len(tbl.ColumnWidths); n > 0 {
		tbl.ColumnWidths = append(tbl.ColumnWidths, tbl.ColumnWidths[n-1])
	}
	e.changed()
	return nil
}

// RemoveColumn removes last column, table always keeps at least one.
func (e *Editor) RemoveColumn(h string) error {
	tbl, err := e.resolveTable(h, true)
	if err != nil {
		return err
	}
	return e.deleteColumn(tbl, tbl.MaxColumns-1)
}

// DeleteColumn removes column at index, table always keeps at least one.
func (e *Editor) DeleteColumn(h string, col int) error {
	tbl, err := e.resolveTable(h, true)
	if err != nil {
		return err
	}
	return e.deleteColumn(tbl, col)
}

func (e *Editor) deleteColumn(tbl *model.Table, col int) error {
	if tbl.MaxColumns <= 1 {
		e.noop("delete column", "last column", zap.Int("column", col))
		return nil
	}
	if col < 0 || col >= tbl.MaxColumns {
		return fmt.Errorf("column %d of %d: %w", col, tbl.MaxColumns, ErrInvalidArgument)
	}
	for i := range tbl.Rows {
		if col < len(tbl.Rows[i].Cells) {
			tbl.Rows[i].Cells = slices.Delete(tbl.Rows[i].Cells, col, col+1)
		}
	}
	tbl.MaxColumns--
	if col < len(tbl.ColumnWidths) {
		tbl.ColumnWidths = slices.Delete(tbl.ColumnWidths, col, col+1)
	}
	e.lineRemoved(tbl, -1, col)
	e.dropStaleCell()
	e.changed()
	return nil
}

// ToggleWrap flips text wrapping of a cell.
func (e *Editor) ToggleWrap(h string, row, col int) error {
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		wrap := !c.Wrapped()
		c.Wrap = &wrap
	})
}

// InsertField replaces cell content with new default field of requested
// kind. Cell style is reset to default.
func (e *Editor) InsertField(h string, row, col int, kind model.FieldKind) error {
	content, err := newField(kind)
	if err != nil {
		return err
	}
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		c.Content = content
		c.Props = e.defaults.CellProps()
	})
}

func newField(kind model.FieldKind) (model.Content, error) {
	// leading part of time ordered id is a timestamp, tail is random
	name := func(prefix string) string {
		id := model.NewID().String()
		return prefix + "_" + id[len(id)-12:]
	}
	switch kind {
	case model.FieldKindCheckbox:
		return model.FormField{Kind: model.FormFieldKindCheckbox, Name: name("checkbox"), Value: "Yes"}, nil
	case model.FieldKindCheckboxSimple:
		return model.Checkbox(false), nil
	case model.FieldKindTextInput:
		return model.FormField{Kind: model.FormFieldKindText, Name: name("text")}, nil
	case model.FieldKindRadio:
		n := name("radio")
		return model.FormField{Kind: model.FormFieldKindRadio, Name: n, Value: n, GroupName: "radio_group", Shape: "round"}, nil
	case model.FieldKindRadioSimple:
		return model.Radio(false), nil
	case model.FieldKindImage:
		return model.CellImage{}, nil
	case model.FieldKindHyperlink:
		return model.Hyperlink{Text: "Link", URL: "https://"}, nil
	}
	return nil, fmt.Errorf("field kind %q: %w", kind, ErrInvalidArgument)
}

// ClearCell resets cell to blank text with default style.
func (e *Editor) ClearCell(h string, row, col int) error {
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		c.Content = model.Text("")
		c.Props = e.defaults.CellProps()
	})
}

// SetCellText changes text of a cell. Hyperlink keeps its target and text
// field keeps its name, any other content is replaced by plain text.
func (e *Editor) SetCellText(h string, row, col int, text string) error {
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		switch v := c.Value().(type) {
		case model.Hyperlink:
			v.Text = text
			c.Content = v
		case model.FormField:
			if v.Kind == model.FormFieldKindText {
				v.Value = text
				c.Content = v
				return
			}
			c.Content = model.Text(text)
		default:
			c.Content = model.Text(text)
		}
	})
}

// SetCellLink turns cell into hyperlink keeping its text.
func (e *Editor) SetCellLink(h string, row, col int, url string) error {
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		c.Content = model.Hyperlink{Text: c.Text(), URL: url}
	})
}

// SetCellImage puts picture into a cell, data is base64 encoded. Display size
// of existing picture is kept.
func (e *Editor) SetCellImage(h string, row, col int, name, data string) error {
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		img, _ := c.Value().(model.CellImage)
		img.Name, img.Data = name, data
		c.Content = img
	})
}

// SetCellChecked sets state of check box, radio or form field in a cell.
func (e *Editor) SetCellChecked(h string, row, col int, checked bool) error {
	tbl, err := e.resolveTable(h, true)
	if err != nil {
		return err
	}
	c, err := cell(tbl, row, col)
	if err != nil {
		return err
	}
	switch v := c.Value().(type) {
	case model.Checkbox:
		c.Content = model.Checkbox(checked)
	case model.Radio:
		c.Content = model.Radio(checked)
	case model.FormField:
		if v.Kind == model.FormFieldKindText {
			return fmt.Errorf("checked state of text field: %w", ErrUnsupported)
		}
		v.Checked = checked
		c.Content = v
	default:
		return fmt.Errorf("checked state of %s cell: %w", v.Variant(), ErrUnsupported)
	}
	e.changed()
	return nil
}
