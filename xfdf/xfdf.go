// Package xfdf converts interactive form fields of a template to and from
// XFDF, the field values interchange format accepted by fill endpoint of the
// generation service.
package xfdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"tpledit/model"
)

// Namespace of XFDF documents.
const Namespace = "http://ns.adobe.com/xfdf/"

// Off is exported value of unchecked check box or radio group.
const Off = "Off"

var ErrNoFields = errors.New("xfdf has no fields")

// Field is a single form field found in the document. Radio buttons of the
// same group are reported once, under the group name.
type Field struct {
	Name  string
	Value string
	Kind  model.FormFieldKind
	// location of the cell holding the field, for radio groups - of the first member
	Handle string
	Row    int
	Col    int
}

type located struct {
	field  model.FormField
	handle string
	row    int
	col    int
}

func collect(doc *model.Document) []located {
	var out []located
	walk := func(handle string, t *model.Table) {
		if t == nil {
			return
		}
		for r := range t.Rows {
			for c := range t.Rows[r].Cells {
				if ff, ok := t.Rows[r].Cells[c].Value().(model.FormField); ok {
					out = append(out, located{field: ff, handle: handle, row: r, col: c})
				}
			}
		}
	}
	if doc.Title != nil {
		walk(string(model.TitleID), doc.Title.Table)
	}
	for _, e := range doc.Body {
		if t, ok := e.Block.(*model.Table); ok {
			walk(e.ID.String(), t)
		}
	}
	return out
}

func groupName(ff model.FormField) string {
	if ff.GroupName != "" {
		return ff.GroupName
	}
	return ff.Name
}

func checkedValue(ff model.FormField) string {
	if ff.Value != "" {
		return ff.Value
	}
	if ff.Kind == model.FormFieldKindRadio {
		return ff.Name
	}
	return "Yes"
}

// Fields returns form fields of the document in display order.
func Fields(doc *model.Document) []Field {
	var (
		fields []Field
		groups = make(map[string]int)
	)
	for _, l := range collect(doc) {
		ff := l.field
		switch ff.Kind {
		case model.FormFieldKindRadio:
			name := groupName(ff)
			i, seen := groups[name]
			if !seen {
				i = len(fields)
				groups[name] = i
				fields = append(fields, Field{Name: name, Value: Off, Kind: ff.Kind, Handle: l.handle, Row: l.row, Col: l.col})
			}
			if ff.Checked {
				fields[i].Value = checkedValue(ff)
			}
		case model.FormFieldKindCheckbox:
			v := Off
			if ff.Checked {
				v = checkedValue(ff)
			}
			fields = append(fields, Field{Name: ff.Name, Value: v, Kind: ff.Kind, Handle: l.handle, Row: l.row, Col: l.col})
		default:
			fields = append(fields, Field{Name: ff.Name, Value: ff.Value, Kind: ff.Kind, Handle: l.handle, Row: l.row, Col: l.col})
		}
	}
	return fields
}

// Build returns XFDF document for fields.
func Build(fields []Field, source string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("xfdf")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("xml:space", "preserve")

	list := root.CreateElement("fields")
	for _, f := range fields {
		el := list.CreateElement("field")
		el.CreateAttr("name", f.Name)
		el.CreateElement("value").SetText(f.Value)
	}
	if source != "" {
		root.CreateElement("f").CreateAttr("href", source)
	}
	doc.Indent(2)
	return doc
}

// Export writes form fields of the document as XFDF.
func Export(doc *model.Document, source string, w io.Writer) error {
	if _, err := Build(Fields(doc), source).WriteTo(w); err != nil {
		return fmt.Errorf("unable to write xfdf: %w", err)
	}
	return nil
}

// Values parses XFDF and returns field values by fully qualified name.
// Nested fields are joined with dots. Encoding declared by XML prolog is
// honored.
func Values(data []byte) (map[string]string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse xfdf: %w", err)
	}
	root := doc.SelectElement("xfdf")
	if root == nil {
		return nil, errors.New("not an xfdf document")
	}
	list := root.SelectElement("fields")
	if list == nil {
		return nil, ErrNoFields
	}

	values := make(map[string]string)
	var walk func(prefix string, el *etree.Element)
	walk = func(prefix string, el *etree.Element) {
		for _, f := range el.SelectElements("field") {
			name := strings.TrimSpace(f.SelectAttrValue("name", ""))
			if prefix != "" {
				name = prefix + "." + name
			}
			if v := f.SelectElement("value"); v != nil {
				values[name] = strings.TrimSpace(v.Text())
			}
			walk(name, f)
		}
	}
	walk("", list)
	return values, nil
}

// Cells returns every form field cell of the document. Radio buttons are
// reported one by one under their group name, Value of check boxes and
// radios is what they export when checked.
func Cells(doc *model.Document) []Field {
	var fields []Field
	for _, l := range collect(doc) {
		ff := l.field
		f := Field{Name: ff.Name, Value: ff.Value, Kind: ff.Kind, Handle: l.handle, Row: l.row, Col: l.col}
		switch ff.Kind {
		case model.FormFieldKindRadio:
			f.Name, f.Value = groupName(ff), checkedValue(ff)
		case model.FormFieldKindCheckbox:
			f.Value = checkedValue(ff)
		}
		fields = append(fields, f)
	}
	return fields
}
