// Package codec converts template documents to and from wire JSON. Encoding
// always produces the canonical shape, decoding accepts every shape templates
// were saved with over time.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tpledit/model"
)

// Decode parses wire JSON into a new document. Config fields absent from the
// input keep values from base (nil base means zero config). On error nothing
// is returned and the caller's document is left as it was.
//
// Body is taken from the first present of: "elements", legacy "content", or
// split "table"/"spacer"/"image" arrays in that implicit order. Body entries
// may embed their payload, reference split arrays by index or be bare
// untyped blocks. Entries which cannot be classified are kept opaque.
func Decode(data []byte, base *model.Config, log *zap.Logger) (*model.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DecodeError{Err: errors.New("empty template")}
	}

	var src wireSource
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, &DecodeError{Err: err}
	}

	d := &decoder{log: log, src: &src}

	cfg, bookmarks, err := d.config(base)
	if err != nil {
		return nil, err
	}
	doc := model.New(cfg)

	if src.Title != nil {
		doc.Title = d.title(src.Title)
	}
	if src.Footer != nil {
		doc.Footer = d.footer(src.Footer)
	}
	if src.Bookmarks != nil {
		bookmarks = src.Bookmarks
	}
	doc.Bookmarks = decodeBookmarks(bookmarks)

	if doc.Body, err = d.body(); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		log.Warn("Template does not satisfy document invariants", zap.Error(err))
	}
	return doc, nil
}

type decoder struct {
	log *zap.Logger
	src *wireSource
}

func (d *decoder) config(base *model.Config) (model.Config, []wireBookmark, error) {
	var cfg model.Config
	if base != nil {
		cfg = base.Clone()
	}
	raw := d.src.Config
	if len(raw) == 0 || string(raw) == "null" {
		return cfg, nil, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return model.Config{}, nil, &DecodeError{Path: "config", Err: err}
	}
	var extras wireConfigExtras
	if err := json.Unmarshal(raw, &extras); err != nil {
		return model.Config{}, nil, &DecodeError{Path: "config", Err: err}
	}
	if extras.EmbedStandardFonts != nil {
		v := *extras.EmbedStandardFonts
		cfg.EmbedFonts = &v
	}
	return cfg, extras.Bookmarks, nil
}

func (d *decoder) props(path, s string) model.Props {
	p, err := model.ParseProps(s)
	if err != nil {
		d.log.Debug("Style descriptor normalized", zap.String("path", path), zap.String("props", s), zap.Error(err))
	}
	return p
}

func (d *decoder) title(w *wireTitle) *model.Title {
	t := &model.Title{
		Props:     d.props("title.props", w.Props),
		Text:      w.Text,
		BgColor:   w.BgColor,
		TextColor: w.TextColor,
		Link:      w.Link,
	}
	if w.TextProps != "" {
		t.TextProps = d.props("title.textprops", w.TextProps)
	} else {
		t.TextProps = t.Props
	}
	if w.Table != nil {
		t.Table = d.table("title.table", w.Table)
	}
	return t
}

func (d *decoder) footer(w *wireFooter) *model.Footer {
	props := w.Props
	if props == "" {
		props = w.Font
	}
	return &model.Footer{
		Props: d.props("footer.props", props),
		Text:  w.Text,
		Link:  w.Link,
	}
}

func decodeBookmarks(ws []wireBookmark) []model.Bookmark {
	if len(ws) == 0 {
		return nil
	}
	out := make([]model.Bookmark, len(ws))
	for i, w := range ws {
		out[i] = model.Bookmark{
			Title:    w.Title,
			Dest:     w.Dest,
			URL:      w.URL,
			Page:     w.Page,
			Y:        w.Y,
			Open:     w.Open,
			Children: decodeBookmarks(w.Children),
		}
	}
	return out
}

func (d *decoder) body() ([]model.Element, error) {
	var (
		entries []json.RawMessage
		name    string
	)
	switch {
	case d.src.Elements != nil:
		entries, name = d.src.Elements, "elements"
	case d.src.Content != nil:
		entries, name = d.src.Content, "content"
	default:
		return d.splitArrays()
	}

	body := make([]model.Element, 0, len(entries))
	for i, raw := range entries {
		block, err := d.entry(fmt.Sprintf("%s[%d]", name, i), raw)
		if err != nil {
			return nil, err
		}
		body = append(body, model.NewElement(block))
	}
	return body, nil
}

// splitArrays builds body when no ordered list is present: all tables, then
// all spacers, then all images.
func (d *decoder) splitArrays() ([]model.Element, error) {
	var body []model.Element
	for _, kind := range []model.Kind{model.KindTable, model.KindSpacer, model.KindImage} {
		arr := d.array(kind)
		for i := range arr {
			block, err := d.payload(fmt.Sprintf("%s[%d]", kind, i), kind, arr[i])
			if err != nil {
				return nil, err
			}
			body = append(body, model.NewElement(block))
		}
	}
	return body, nil
}

func (d *decoder) array(kind model.Kind) []json.RawMessage {
	switch kind {
	case model.KindTable:
		return d.src.Tables
	case model.KindSpacer:
		return d.src.Spacers
	case model.KindImage:
		return d.src.Images
	}
	return nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func opaque(typ string, raw json.RawMessage) *model.Opaque {
	return &model.Opaque{Type: typ, Raw: bytes.Clone(raw)}
}

func (d *decoder) entry(path string, raw json.RawMessage) (model.Block, error) {
	var e wireEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		d.log.Debug("Body entry is not an object, keeping as is", zap.String("path", path))
		return opaque("", raw), nil
	}

	if e.Type == nil {
		return d.untyped(path, &e, raw)
	}

	typ := strings.ToLower(strings.TrimSpace(*e.Type))
	kind, err := model.ParseKind(typ)
	if err != nil || !kind.Body() {
		d.log.Debug("Unknown body entry type, keeping as is", zap.String("path", path), zap.String("type", *e.Type))
		return opaque(*e.Type, raw), nil
	}

	switch {
	case present(e.embedded(kind)):
		return d.payload(path+"."+typ, kind, e.embedded(kind))
	case e.Index != nil:
		arr := d.array(kind)
		if *e.Index < 0 || *e.Index >= len(arr) {
			d.log.Warn("Body entry references missing block, keeping as is",
				zap.String("path", path), zap.Stringer("kind", kind), zap.Int("index", *e.Index), zap.Int("available", len(arr)))
			return opaque(*e.Type, raw), nil
		}
		return d.payload(fmt.Sprintf("%s[%d]", typ, *e.Index), kind, arr[*e.Index])
	case e.looksLike() == kind:
		// payload fields placed directly on the entry
		return d.payload(path, kind, raw)
	}
	d.log.Debug("Typed body entry without payload, keeping as is", zap.String("path", path), zap.String("type", *e.Type))
	return opaque(*e.Type, raw), nil
}

func (d *decoder) untyped(path string, e *wireEntry, raw json.RawMessage) (model.Block, error) {
	if kind := e.looksLike(); kind != model.KindUnknown {
		d.log.Debug("Inferred body entry type", zap.String("path", path), zap.Stringer("kind", kind))
		return d.payload(path, kind, raw)
	}
	for _, kind := range []model.Kind{model.KindTable, model.KindSpacer, model.KindImage} {
		if present(e.embedded(kind)) {
			return d.payload(path+"."+kind.String(), kind, e.embedded(kind))
		}
	}
	d.log.Debug("Unrecognized body entry, keeping as is", zap.String("path", path))
	return opaque("", raw), nil
}

func (e *wireEntry) embedded(kind model.Kind) json.RawMessage {
	switch kind {
	case model.KindTable:
		return e.Table
	case model.KindSpacer:
		return e.Spacer
	case model.KindImage:
		return e.Image
	}
	return nil
}

// looksLike classifies bare block by its fields.
func (e *wireEntry) looksLike() model.Kind {
	switch {
	case present(e.MaxColumns) && present(e.Rows):
		return model.KindTable
	case present(e.Height) && !present(e.Width):
		return model.KindSpacer
	case present(e.ImageData) || present(e.ImageName):
		return model.KindImage
	}
	return model.KindUnknown
}

func (d *decoder) payload(path string, kind model.Kind, raw json.RawMessage) (model.Block, error) {
	switch kind {
	case model.KindTable:
		var w wireTable
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return d.table(path, &w), nil
	case model.KindSpacer:
		var w wireSpacer
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return &model.Spacer{Height: w.Height}, nil
	case model.KindImage:
		var w wireImage
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return &model.Image{Width: w.Width, Height: w.Height, Name: w.ImageName, Data: w.ImageData, Link: w.Link}, nil
	}
	return nil, &DecodeError{Path: path, Err: fmt.Errorf("unexpected block kind %s", kind)}
}

func (d *decoder) table(path string, w *wireTable) *model.Table {
	t := &model.Table{
		MaxColumns:   w.MaxColumns,
		Rows:         make([]model.Row, len(w.Rows)),
		ColumnWidths: w.ColumnWidths,
		RowHeights:   w.RowHeights,
		BgColor:      w.BgColor,
		TextColor:    w.TextColor,
	}
	widest := 0
	for r := range w.Rows {
		cells := make([]model.Cell, len(w.Rows[r].Row))
		for c := range cells {
			cells[c] = d.cell(fmt.Sprintf("%s.rows[%d][%d]", path, r, c), &w.Rows[r].Row[c])
		}
		t.Rows[r].Cells = cells
		widest = max(widest, len(cells))
	}
	if t.MaxColumns <= 0 {
		d.log.Debug("Table without column count, using widest row", zap.String("path", path), zap.Int("columns", max(widest, 1)))
		t.MaxColumns = max(widest, 1)
	}
	return t
}

// cell picks a single content variant, wire cell may carry several of them.
// Priority: form field, image, check box, radio, hyperlink, text.
func (d *decoder) cell(path string, w *wireCell) model.Cell {
	c := model.Cell{
		Props:     d.props(path, w.Props),
		Wrap:      w.Wrap,
		Width:     w.Width,
		Height:    w.Height,
		BgColor:   w.BgColor,
		TextColor: w.TextColor,
	}

	var text string
	if w.Text != nil {
		text = *w.Text
	}
	checkbox := w.Chequebox
	if checkbox == nil {
		checkbox = w.Checkbox
	}

	switch {
	case w.FormField != nil:
		kind, err := model.ParseFormFieldKind(strings.ToLower(w.FormField.Type))
		if err != nil {
			d.log.Debug("Unknown form field type, using text", zap.String("path", path), zap.String("type", w.FormField.Type))
			kind = model.FormFieldKindText
		}
		c.Content = model.FormField{
			Kind:      kind,
			Name:      w.FormField.Name,
			Value:     w.FormField.Value,
			Checked:   w.FormField.Checked,
			GroupName: w.FormField.GroupName,
			Shape:     w.FormField.Shape,
		}
	case w.Image != nil:
		c.Content = model.CellImage{Name: w.Image.ImageName, Data: w.Image.ImageData, Width: w.Image.Width, Height: w.Image.Height}
	case checkbox != nil:
		c.Content = model.Checkbox(*checkbox)
	case w.Radio != nil:
		c.Content = model.Radio(*w.Radio)
	case w.Link != "":
		c.Content = model.Hyperlink{Text: text, URL: w.Link}
	default:
		c.Content = model.Text(text)
	}
	return c
}
