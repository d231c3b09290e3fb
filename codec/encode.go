package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tpledit/model"
)

// Encode produces canonical wire JSON indented with two spaces. Title,
// footer and bookmarks keys are left out when document has none.
func Encode(doc *model.Document) ([]byte, error) {
	w := wireDocument{
		Config:    doc.Config,
		Elements:  make([]any, 0, len(doc.Body)),
		Bookmarks: encodeBookmarks(doc.Bookmarks),
	}
	if doc.Title != nil {
		w.Title = encodeTitle(doc.Title)
	}
	if doc.Footer != nil {
		w.Footer = &wireFooter{Props: doc.Footer.Props.String(), Text: doc.Footer.Text, Link: doc.Footer.Link}
	}
	for i, e := range doc.Body {
		switch b := e.Block.(type) {
		case *model.Table:
			w.Elements = append(w.Elements, wireElement{Type: model.KindTable.String(), Table: encodeTable(b)})
		case *model.Spacer:
			w.Elements = append(w.Elements, wireElement{Type: model.KindSpacer.String(), Spacer: &wireSpacer{Height: b.Height}})
		case *model.Image:
			w.Elements = append(w.Elements, wireElement{Type: model.KindImage.String(), Image: &wireImage{
				ImageName: b.Name, ImageData: b.Data, Width: b.Width, Height: b.Height, Link: b.Link,
			}})
		case *model.Opaque:
			w.Elements = append(w.Elements, json.RawMessage(b.Raw))
		default:
			return nil, fmt.Errorf("element %d (%s): nothing to encode", i, e.ID)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&w); err != nil {
		return nil, fmt.Errorf("unable to encode template: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeTitle(t *model.Title) *wireTitle {
	w := &wireTitle{
		Props:     t.Props.String(),
		Text:      t.Text,
		TextProps: t.TextProps.String(),
		BgColor:   t.BgColor,
		TextColor: t.TextColor,
		Link:      t.Link,
	}
	if t.Table != nil {
		w.Table = encodeTable(t.Table)
	}
	return w
}

func encodeTable(t *model.Table) *wireTable {
	w := &wireTable{
		MaxColumns:   t.MaxColumns,
		Rows:         make([]wireRow, len(t.Rows)),
		ColumnWidths: t.ColumnWidths,
		RowHeights:   t.RowHeights,
		BgColor:      t.BgColor,
		TextColor:    t.TextColor,
	}
	for r, row := range t.Rows {
		cells := make([]wireCell, len(row.Cells))
		for c := range row.Cells {
			cells[c] = encodeCell(&row.Cells[c])
		}
		w.Rows[r].Row = cells
	}
	return w
}

func encodeCell(c *model.Cell) wireCell {
	w := wireCell{
		Props:     c.Props.String(),
		Wrap:      c.Wrap,
		Width:     c.Width,
		Height:    c.Height,
		BgColor:   c.BgColor,
		TextColor: c.TextColor,
	}
	switch v := c.Value().(type) {
	case model.Text:
		s := string(v)
		w.Text = &s
	case model.Hyperlink:
		s := v.Text
		w.Text = &s
		w.Link = v.URL
	case model.Checkbox:
		b := bool(v)
		w.Chequebox = &b
	case model.Radio:
		b := bool(v)
		w.Radio = &b
	case model.CellImage:
		w.Image = &wireImage{ImageName: v.Name, ImageData: v.Data, Width: v.Width, Height: v.Height}
	case model.FormField:
		w.FormField = &wireFormField{
			Type:      v.Kind.String(),
			Name:      v.Name,
			Value:     v.Value,
			Checked:   v.Checked,
			GroupName: v.GroupName,
			Shape:     v.Shape,
		}
	}
	return w
}

func encodeBookmarks(bs []model.Bookmark) []wireBookmark {
	if len(bs) == 0 {
		return nil
	}
	out := make([]wireBookmark, len(bs))
	for i, b := range bs {
		out[i] = wireBookmark{
			Title:    b.Title,
			Dest:     b.Dest,
			URL:      b.URL,
			Page:     b.Page,
			Y:        b.Y,
			Open:     b.Open,
			Children: encodeBookmarks(b.Children),
		}
	}
	return out
}
