package editor

import (
	"fmt"

	"tpledit/model"
)

// descriptor returns style descriptor whole element operations work on: text
// style of the title and style of the footer.
func (e *Editor) descriptor(t target) (*model.Props, error) {
	switch t.kind {
	case model.KindTitle:
		return &e.doc.Title.TextProps, nil
	case model.KindFooter:
		return &e.doc.Footer.Props, nil
	}
	return nil, fmt.Errorf("style of %s: %w", t.kind, ErrUnsupported)
}

// modifyStyle applies fn to title or footer descriptor, or to every cell
// when element is a table and allCells is set.
func (e *Editor) modifyStyle(h string, allCells bool, fn func(p model.Props) model.Props) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	if t.kind == model.KindTable && allCells {
		tbl := e.doc.Body[t.index].Block.(*model.Table)
		for r := range tbl.Rows {
			for c := range tbl.Rows[r].Cells {
				tbl.Rows[r].Cells[c].Props = fn(tbl.Rows[r].Cells[c].Props)
			}
		}
		e.changed()
		return nil
	}
	p, err := e.descriptor(t)
	if err != nil {
		return err
	}
	*p = fn(*p)
	e.changed()
	return nil
}

func validBit(bit model.StyleBit) error {
	if !bit.IsValid() {
		return fmt.Errorf("style bit %d: %w", bit, ErrInvalidArgument)
	}
	return nil
}

// ToggleStyle flips bold, italic or underline of title text or footer.
func (e *Editor) ToggleStyle(h string, bit model.StyleBit) error {
	if err := validBit(bit); err != nil {
		return err
	}
	return e.modifyStyle(h, false, func(p model.Props) model.Props {
		return p.ToggleStyle(bit)
	})
}

// SetAlignment sets alignment of title text, footer or all cells of a table.
func (e *Editor) SetAlignment(h string, a model.Alignment) error {
	if !a.IsValid() {
		return fmt.Errorf("alignment %q: %w", a, ErrInvalidArgument)
	}
	return e.modifyStyle(h, true, func(p model.Props) model.Props {
		return p.WithAlignment(a)
	})
}

// SetBorderPreset sets borders of title text, footer or all cells of a table.
func (e *Editor) SetBorderPreset(h string, preset model.BorderPreset) error {
	if !preset.IsValid() {
		return fmt.Errorf("border preset %q: %w", preset, ErrInvalidArgument)
	}
	return e.modifyStyle(h, true, func(p model.Props) model.Props {
		return p.WithBorders(preset)
	})
}

// SetFont changes font name and size of title text, footer or all cells of
// a table. Zero size keeps current one.
func (e *Editor) SetFont(h, font string, size float64) error {
	if font == "" || size < 0 {
		return fmt.Errorf("font %q size %g: %w", font, size, ErrInvalidArgument)
	}
	return e.modifyStyle(h, true, func(p model.Props) model.Props {
		p.Font = font
		if size > 0 {
			p.Size = size
		}
		return p
	})
}

// ToggleCellStyle flips bold, italic or underline of a single cell.
func (e *Editor) ToggleCellStyle(h string, row, col int, bit model.StyleBit) error {
	if err := validBit(bit); err != nil {
		return err
	}
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		c.Props = c.Props.ToggleStyle(bit)
	})
}

// SetCellAlignment sets alignment of a single cell.
func (e *Editor) SetCellAlignment(h string, row, col int, a model.Alignment) error {
	if !a.IsValid() {
		return fmt.Errorf("alignment %q: %w", a, ErrInvalidArgument)
	}
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		c.Props = c.Props.WithAlignment(a)
	})
}

// SetCellBorderPreset sets borders of a single cell.
func (e *Editor) SetCellBorderPreset(h string, row, col int, preset model.BorderPreset) error {
	if !preset.IsValid() {
		return fmt.Errorf("border preset %q: %w", preset, ErrInvalidArgument)
	}
	return e.modifyCell(h, row, col, func(c *model.Cell) {
		c.Props = c.Props.WithBorders(preset)
	})
}
