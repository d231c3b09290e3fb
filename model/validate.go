package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks structural invariants of the document and reports every
// violation found. Editing operations never produce invalid documents, this
// is used on decoded input and in tests.
func (d *Document) Validate() error {
	var err error

	if d.Title != nil && d.Title.Table != nil {
		if e := validateTable(d.Title.Table); e != nil {
			err = multierr.Append(err, fmt.Errorf("title table: %w", e))
		}
		if len(d.Title.Table.Rows) > 1 {
			err = multierr.Append(err, fmt.Errorf("title table: %d rows, layout table must have single row", len(d.Title.Table.Rows)))
		}
	}

	seen := make(map[ID]int, len(d.Body))
	for i, e := range d.Body {
		if e.ID == "" {
			err = multierr.Append(err, fmt.Errorf("element %d: empty identity", i))
		} else if prev, ok := seen[e.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("element %d: identity %s already used by element %d", i, e.ID, prev))
		} else {
			seen[e.ID] = i
		}
		if e.ID == TitleID || e.ID == FooterID {
			err = multierr.Append(err, fmt.Errorf("element %d: reserved identity %s", i, e.ID))
		}
		switch b := e.Block.(type) {
		case nil:
			err = multierr.Append(err, fmt.Errorf("element %d: no content", i))
		case *Table:
			if e := validateTable(b); e != nil {
				err = multierr.Append(err, fmt.Errorf("element %d (table): %w", i, e))
			}
		case *Spacer:
			if b.Height < 0 {
				err = multierr.Append(err, fmt.Errorf("element %d (spacer): negative height %g", i, b.Height))
			}
		case *Image:
			if b.Width < 0 || b.Height < 0 {
				err = multierr.Append(err, fmt.Errorf("element %d (image): negative dimensions %gx%g", i, b.Width, b.Height))
			}
		}
	}
	return err
}

func validateTable(t *Table) error {
	var err error
	if t.MaxColumns < 1 {
		err = multierr.Append(err, fmt.Errorf("maxcolumns %d, must be at least 1", t.MaxColumns))
	}
	if len(t.Rows) < 1 {
		err = multierr.Append(err, fmt.Errorf("no rows"))
	}
	for i, r := range t.Rows {
		if len(r.Cells) != t.MaxColumns {
			err = multierr.Append(err, fmt.Errorf("row %d has %d cells, expected %d", i, len(r.Cells), t.MaxColumns))
		}
	}
	if len(t.ColumnWidths) > 0 && len(t.ColumnWidths) != t.MaxColumns {
		err = multierr.Append(err, fmt.Errorf("%d column widths for %d columns", len(t.ColumnWidths), t.MaxColumns))
	}
	if len(t.RowHeights) > 0 && len(t.RowHeights) != len(t.Rows) {
		err = multierr.Append(err, fmt.Errorf("%d row heights for %d rows", len(t.RowHeights), len(t.Rows)))
	}
	return err
}
