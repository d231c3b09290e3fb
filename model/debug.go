package model

import (
	"tpledit/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the document. Binary payloads are shown
// by size only. It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	return treeWriter{debug.NewTreeWriter()}.document(d).String()
}

func (tw treeWriter) document(d *Document) treeWriter {
	tw.Line(0, "Document")
	c := &d.Config
	tw.Line(1, "Config page=%q alignment=%d border=%q margin=%q", c.Page, c.PageAlignment, c.PageBorder, c.PageMargin)
	if d.Title != nil {
		tw.Line(1, "Title props=%q textprops=%q", d.Title.Props.String(), d.Title.TextProps.String())
		tw.TextBlock(2, "text", d.Title.Text)
		if d.Title.Table != nil {
			tw.table(2, d.Title.Table)
		}
	}
	for i, e := range d.Body {
		switch b := e.Block.(type) {
		case *Table:
			tw.Line(1, "[%d] table id=%s", i, e.ID)
			tw.table(2, b)
		case *Spacer:
			tw.Line(1, "[%d] spacer id=%s height=%g", i, e.ID, b.Height)
		case *Image:
			tw.Line(1, "[%d] image id=%s name=%q %gx%g bytes=%d", i, e.ID, b.Name, b.Width, b.Height, len(b.Data))
		case *Opaque:
			tw.Line(1, "[%d] opaque id=%s type=%q bytes=%d", i, e.ID, b.Type, len(b.Raw))
		default:
			tw.Line(1, "[%d] <empty> id=%s", i, e.ID)
		}
	}
	if d.Footer != nil {
		tw.Line(1, "Footer props=%q", d.Footer.Props.String())
		tw.TextBlock(2, "text", d.Footer.Text)
	}
	if len(d.Bookmarks) > 0 {
		tw.Line(1, "Bookmarks: %d", len(d.Bookmarks))
		tw.bookmarks(2, d.Bookmarks)
	}
	return tw
}

func (tw treeWriter) table(depth int, t *Table) {
	tw.Line(depth, "maxcolumns=%d rows=%d", t.MaxColumns, len(t.Rows))
	for r, row := range t.Rows {
		for c := range row.Cells {
			cell := &row.Cells[c]
			line := "(%d,%d) %s props=%q"
			args := []any{r, c, cell.Value().Variant(), cell.Props.String()}
			if text := cell.Text(); text != "" {
				line += " text=%s"
				args = append(args, tw.TextPreview(text, 24))
			}
			if cell.Wrapped() {
				line += " wrap"
			}
			tw.Line(depth+1, line, args...)
		}
	}
}

func (tw treeWriter) bookmarks(depth int, bookmarks []Bookmark) {
	for _, b := range bookmarks {
		tw.Line(depth, "%q page=%d dest=%q", b.Title, b.Page, b.Dest)
		tw.bookmarks(depth+1, b.Children)
	}
}
