package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDocument() *Document {
	wrap := true
	width := 120.0
	doc := New(DefaultConfig())
	doc.Title = DefaultSettings().NewTitle()
	doc.Title.Table = DefaultSettings().NewTable(1, 2)
	doc.Footer = DefaultSettings().NewFooter()

	tbl := DefaultSettings().NewTable(2, 2)
	tbl.Rows[0].Cells[0].Content = Text("name")
	tbl.Rows[0].Cells[0].Wrap = &wrap
	tbl.Rows[0].Cells[1].Content = FormField{Kind: FormFieldKindText, Name: "name_field"}
	tbl.Rows[1].Cells[0].Content = Hyperlink{Text: "site", URL: "https://example.com"}
	tbl.Rows[1].Cells[1].Width = &width
	tbl.ColumnWidths = []float64{1, 2}

	doc.Body = []Element{
		NewElement(tbl),
		NewElement(&Spacer{Height: 10}),
		NewElement(&Image{Width: 20, Height: 30, Name: "logo.png", Data: "AAAA"}),
		NewElement(&Opaque{Type: "chart", Raw: []byte(`{"type":"chart"}`)}),
	}
	doc.Bookmarks = []Bookmark{{Title: "Top", Page: 1, Children: []Bookmark{{Title: "Child", Page: 2}}}}
	return doc
}

func TestDocumentClone(t *testing.T) {
	doc := sampleDocument()
	cp := doc.Clone()

	if diff := cmp.Diff(doc, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	// mutate every level of the copy, original must not change
	want := doc.String()
	tbl := cp.Body[0].Block.(*Table)
	tbl.Rows[0].Cells[0].Content = Text("changed")
	*tbl.Rows[0].Cells[0].Wrap = false
	*tbl.Rows[1].Cells[1].Width = 1
	tbl.ColumnWidths[0] = 99
	tbl.Rows = append(tbl.Rows, DefaultSettings().BlankRow(2))
	cp.Body[1].Block.(*Spacer).Height = 1
	cp.Body[3].Block.(*Opaque).Raw[0] = '['
	cp.Title.Table.Rows[0].Cells[0].Content = Checkbox(true)
	cp.Title.Text = "other"
	cp.Footer.Text = "other"
	*cp.Config.EmbedFonts = false
	cp.Bookmarks[0].Children[0].Title = "other"

	if got := doc.String(); got != want {
		t.Errorf("original modified through clone:\n%s", got)
	}
	if *doc.Config.EmbedFonts != true {
		t.Error("config shares embed flag with clone")
	}
	if doc.Bookmarks[0].Children[0].Title != "Child" {
		t.Error("bookmarks share storage with clone")
	}
	if string(doc.Body[3].Block.(*Opaque).Raw) != `{"type":"chart"}` {
		t.Error("opaque payload shares storage with clone")
	}
}

func TestElementCopy(t *testing.T) {
	e := NewElement(&Spacer{Height: 5})

	same := e.Clone()
	if same.ID != e.ID {
		t.Errorf("Clone changed identity: %s != %s", same.ID, e.ID)
	}

	cp := e.Copy()
	if cp.ID == e.ID {
		t.Error("Copy kept identity")
	}
	if diff := cmp.Diff(e.Block, cp.Block); diff != "" {
		t.Errorf("Copy content differs:\n%s", diff)
	}
	cp.Block.(*Spacer).Height = 50
	if e.Block.(*Spacer).Height != 5 {
		t.Error("Copy shares block with original")
	}
}
