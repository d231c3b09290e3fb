package xfdf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tpledit/model"
)

func formDocument() (*model.Document, model.ID) {
	d := model.DefaultSettings()
	doc := model.New(model.Config{})

	title := d.NewTable(1, 1)
	title.Rows[0].Cells[0].Content = model.FormField{Kind: model.FormFieldKindText, Name: "ref", Value: "R-1"}
	doc.Title = &model.Title{Text: "Order", Table: title}

	tbl := d.NewTable(2, 2)
	tbl.Rows[0].Cells[0].Content = model.FormField{Kind: model.FormFieldKindText, Name: "customer", Value: "ACME & Sons"}
	tbl.Rows[0].Cells[1].Content = model.FormField{Kind: model.FormFieldKindCheckbox, Name: "agree", Checked: true}
	tbl.Rows[1].Cells[0].Content = model.FormField{Kind: model.FormFieldKindRadio, Name: "pay_card", Value: "card", GroupName: "pay"}
	tbl.Rows[1].Cells[1].Content = model.FormField{Kind: model.FormFieldKindRadio, Name: "pay_cash", Value: "cash", GroupName: "pay", Checked: true}

	e := model.NewElement(tbl)
	doc.Insert(-1, model.NewElement(&model.Spacer{Height: 10}))
	doc.Insert(-1, e)
	return doc, e.ID
}

func TestFields(t *testing.T) {
	doc, id := formDocument()

	got := Fields(doc)
	want := []Field{
		{Name: "ref", Value: "R-1", Kind: model.FormFieldKindText, Handle: "title"},
		{Name: "customer", Value: "ACME & Sons", Kind: model.FormFieldKindText, Handle: id.String()},
		{Name: "agree", Value: "Yes", Kind: model.FormFieldKindCheckbox, Handle: id.String(), Col: 1},
		{Name: "pay", Value: "cash", Kind: model.FormFieldKindRadio, Handle: id.String(), Row: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsUnchecked(t *testing.T) {
	d := model.DefaultSettings()
	doc := model.New(model.Config{})
	tbl := d.NewTable(1, 3)
	tbl.Rows[0].Cells[0].Content = model.FormField{Kind: model.FormFieldKindCheckbox, Name: "c", Value: "On"}
	tbl.Rows[0].Cells[1].Content = model.FormField{Kind: model.FormFieldKindRadio, Name: "r1", GroupName: "g"}
	tbl.Rows[0].Cells[2].Content = model.FormField{Kind: model.FormFieldKindRadio, Name: "r2", GroupName: "g"}
	doc.Insert(-1, model.NewElement(tbl))

	got := Fields(doc)
	if len(got) != 2 || got[0].Value != Off || got[1].Name != "g" || got[1].Value != Off {
		t.Fatalf("unexpected fields: %+v", got)
	}

	tbl.Rows[0].Cells[0].Content = model.FormField{Kind: model.FormFieldKindCheckbox, Name: "c", Value: "On", Checked: true}
	tbl.Rows[0].Cells[2].Content = model.FormField{Kind: model.FormFieldKindRadio, Name: "r2", GroupName: "g", Checked: true}
	got = Fields(doc)
	if got[0].Value != "On" || got[1].Value != "r2" {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestExportAndValues(t *testing.T) {
	doc, _ := formDocument()

	var buf bytes.Buffer
	if err := Export(doc, "order.pdf", &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()
	for _, s := range []string{`<?xml version="1.0" encoding="UTF-8"?>`, `xmlns="http://ns.adobe.com/xfdf/"`, `<field name="customer">`, `ACME &amp; Sons`, `<f href="order.pdf"/>`} {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q:\n%s", s, out)
		}
	}

	values, err := Values(buf.Bytes())
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	want := map[string]string{"ref": "R-1", "customer": "ACME & Sons", "agree": "Yes", "pay": "cash"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesNested(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<xfdf xmlns="http://ns.adobe.com/xfdf/">
  <fields>
    <field name="address">
      <field name="city"><value> Riga </value></field>
      <field name="zip"><value>LV-1050</value></field>
    </field>
    <field name="name"><value>Ann</value></field>
  </fields>
</xfdf>`)
	values, err := Values(data)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	want := map[string]string{"address.city": "Riga", "address.zip": "LV-1050", "name": "Ann"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesLatin1(t *testing.T) {
	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<xfdf xmlns=\"http://ns.adobe.com/xfdf/\"><fields>" +
		"<field name=\"city\"><value>M\xfcnchen</value></field>" +
		"</fields></xfdf>")
	values, err := Values(data)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if values["city"] != "München" {
		t.Errorf("city = %q", values["city"])
	}
}

func TestValuesErrors(t *testing.T) {
	if _, err := Values([]byte("<xfdf")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Values([]byte("<root/>")); err == nil {
		t.Error("expected error for foreign document")
	}
	if _, err := Values([]byte(`<xfdf xmlns="http://ns.adobe.com/xfdf/"/>`)); !errors.Is(err, ErrNoFields) {
		t.Errorf("expected ErrNoFields, got %v", err)
	}
}

func TestCells(t *testing.T) {
	doc, id := formDocument()

	got := Cells(doc)
	want := []Field{
		{Name: "ref", Value: "R-1", Kind: model.FormFieldKindText, Handle: "title"},
		{Name: "customer", Value: "ACME & Sons", Kind: model.FormFieldKindText, Handle: id.String()},
		{Name: "agree", Value: "Yes", Kind: model.FormFieldKindCheckbox, Handle: id.String(), Col: 1},
		{Name: "pay", Value: "card", Kind: model.FormFieldKindRadio, Handle: id.String(), Row: 1},
		{Name: "pay", Value: "cash", Kind: model.FormFieldKindRadio, Handle: id.String(), Row: 1, Col: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
	}
}
