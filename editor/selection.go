package editor

import (
	"fmt"

	"tpledit/model"
)

// CellRef is position of a cell in a table.
type CellRef struct {
	Row int
	Col int
}

// Selection is currently selected element and optionally one of its cells.
// Zero value means nothing is selected.
type Selection struct {
	ID   model.ID
	Cell *CellRef
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.ID == ""
}

// Selection returns current selection.
func (e *Editor) Selection() Selection {
	sel := e.sel
	if sel.Cell != nil {
		c := *sel.Cell
		sel.Cell = &c
	}
	return sel
}

// Select makes element current. Cell selected in another element is dropped.
func (e *Editor) Select(h string) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	if e.sel.ID != t.id {
		e.sel.Cell = nil
	}
	e.sel.ID = t.id
	return nil
}

// SelectCell makes table cell current.
func (e *Editor) SelectCell(h string, row, col int) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	tbl, err := e.table(t, true)
	if err != nil {
		return err
	}
	if _, err := cell(tbl, row, col); err != nil {
		return err
	}
	e.sel = Selection{ID: t.id, Cell: &CellRef{Row: row, Col: col}}
	return nil
}

// ClearSelection drops selection.
func (e *Editor) ClearSelection() {
	e.sel = Selection{}
}

// lineRemoved keeps selected cell of tbl on the same cell after row or column
// (negative when not removed) was deleted. Selection inside removed line is
// dropped.
func (e *Editor) lineRemoved(tbl *model.Table, row, col int) {
	if e.sel.Cell == nil {
		return
	}
	t, err := e.resolve(e.sel.ID.String())
	if err != nil {
		return
	}
	if selected, err := e.table(t, true); err != nil || selected != tbl {
		return
	}
	c := *e.sel.Cell
	switch {
	case row >= 0 && c.Row == row, col >= 0 && c.Col == col:
		e.sel.Cell = nil
		return
	case row >= 0 && c.Row > row:
		c.Row--
	case col >= 0 && c.Col > col:
		c.Col--
	}
	e.sel.Cell = &c
}

// dropStaleCell forgets selected cell which no longer exists.
func (e *Editor) dropStaleCell() {
	if e.sel.Cell == nil {
		return
	}
	t, err := e.resolve(e.sel.ID.String())
	if err != nil {
		e.sel.Cell = nil
		return
	}
	tbl, err := e.table(t, true)
	if err != nil {
		e.sel.Cell = nil
		return
	}
	if _, err := tbl.Cell(e.sel.Cell.Row, e.sel.Cell.Col); err != nil {
		e.sel.Cell = nil
	}
}

// clipboard holds single deep copy of element.
type clipboard struct {
	kind   model.Kind
	elem   model.Element
	title  *model.Title
	footer *model.Footer
}

func (c *clipboard) empty() bool {
	return c.kind == ""
}

// Clipboard returns kind of element in the clipboard, empty if none.
func (e *Editor) Clipboard() model.Kind {
	return e.clip.kind
}

// Copy puts deep copy of element into the clipboard.
func (e *Editor) Copy(h string) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	switch t.kind {
	case model.KindTitle:
		e.clip = clipboard{kind: t.kind, title: e.doc.Title.Clone()}
	case model.KindFooter:
		e.clip = clipboard{kind: t.kind, footer: e.doc.Footer.Clone()}
	default:
		e.clip = clipboard{kind: t.kind, elem: e.doc.Body[t.index].Clone()}
	}
	return nil
}

// Cut copies element into the clipboard and deletes it.
func (e *Editor) Cut(h string) error {
	if err := e.Copy(h); err != nil {
		return err
	}
	return e.Delete(h)
}

// Paste inserts fresh copy of clipboard content after element named by
// after, or at the end when after is empty. Title and footer go to their own
// places and are refused when document already has one.
func (e *Editor) Paste(after string) (model.ID, error) {
	if e.clip.empty() {
		e.noop("paste", "clipboard is empty")
		return "", nil
	}
	switch e.clip.kind {
	case model.KindTitle:
		if err := e.doc.SetTitle(e.clip.title.Clone()); err != nil {
			return "", e.reject(err, singletonNotice(e.clip.kind))
		}
		e.changed()
		return model.TitleID, nil
	case model.KindFooter:
		if err := e.doc.SetFooter(e.clip.footer.Clone()); err != nil {
			return "", e.reject(err, singletonNotice(e.clip.kind))
		}
		e.changed()
		return model.FooterID, nil
	}

	at, err := e.insertionPoint(after, true)
	if err != nil {
		return "", err
	}
	el := e.clip.elem.Copy()
	e.doc.Insert(at, el)
	e.changed()
	return el.ID, nil
}

// Duplicate inserts copy of element right after it.
func (e *Editor) Duplicate(h string) (model.ID, error) {
	t, err := e.resolve(h)
	if err != nil {
		return "", err
	}
	if t.singleton() {
		return "", e.reject(fmt.Errorf("duplicate %s: %w", t.kind, ErrAlreadyExists), singletonNotice(t.kind))
	}
	el := e.doc.Body[t.index].Copy()
	e.doc.Insert(t.index+1, el)
	e.changed()
	return el.ID, nil
}
