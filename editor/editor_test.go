package editor

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"tpledit/model"
)

type notices []string

func (n *notices) Notify(msg string) { *n = append(*n, msg) }

func newEditor(t *testing.T) (*Editor, *notices) {
	t.Helper()
	n := &notices{}
	return New(nil, zaptest.NewLogger(t), WithNotifier(n)), n
}

func mustInsert(t *testing.T, e *Editor, kind model.Kind) model.ID {
	t.Helper()
	id, err := e.Insert(kind, "")
	if err != nil {
		t.Fatalf("Insert(%s): %v", kind, err)
	}
	return id
}

func bodyIDs(e *Editor) []model.ID {
	var ids []model.ID
	for _, el := range e.Document().Body {
		ids = append(ids, el.ID)
	}
	return ids
}

func tableOf(t *testing.T, e *Editor, id model.ID) *model.Table {
	t.Helper()
	i := e.Document().IndexOf(id)
	if i < 0 {
		t.Fatalf("element %s not found", id)
	}
	tbl, ok := e.Document().Body[i].Block.(*model.Table)
	if !ok {
		t.Fatalf("element %s is %T", id, e.Document().Body[i].Block)
	}
	return tbl
}

func TestInsertDefaults(t *testing.T) {
	e, _ := newEditor(t)
	tid := mustInsert(t, e, model.KindTable)
	sid := mustInsert(t, e, model.KindSpacer)
	iid, err := e.Insert(model.KindImage, sid.String())
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]model.ID{tid, iid, sid}, bodyIDs(e)); diff != "" {
		t.Fatalf("body order (-want +got):\n%s", diff)
	}
	tbl := tableOf(t, e, tid)
	if tbl.MaxColumns != 3 || len(tbl.Rows) != 3 {
		t.Errorf("default table %dx%d, want 3x3", len(tbl.Rows), tbl.MaxColumns)
	}
	if got, want := tbl.Rows[2].Cells[2].Props.String(), "Helvetica:12:000:left:1:1:1:1"; got != want {
		t.Errorf("default cell props = %q, want %q", got, want)
	}
	if h := e.Document().Body[2].Block.(*model.Spacer).Height; h != 20 {
		t.Errorf("default spacer height = %g", h)
	}
	img := e.Document().Body[1].Block.(*model.Image)
	if img.Width != 200 || img.Height != 150 || img.Data != "" {
		t.Errorf("default image = %+v", img)
	}

	if _, err := e.Insert(model.KindUnknown, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Insert(unknown) error = %v", err)
	}
	if _, err := e.Insert(model.KindTable, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Insert before missing element error = %v", err)
	}
}

func TestInsertSingletonRejected(t *testing.T) {
	e, n := newEditor(t)
	mustInsert(t, e, model.KindTitle)
	mustInsert(t, e, model.KindFooter)
	before := e.Document().Clone()

	for _, kind := range []model.Kind{model.KindTitle, model.KindFooter} {
		if _, err := e.Insert(kind, ""); !errors.Is(err, ErrAlreadyExists) {
			t.Errorf("second Insert(%s) error = %v, want ErrAlreadyExists", kind, err)
		}
	}
	if diff := cmp.Diff(before, e.Document()); diff != "" {
		t.Errorf("document changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(notices{"Only one title allowed", "Only one footer allowed"}, *n); diff != "" {
		t.Errorf("notices (-want +got):\n%s", diff)
	}
}

func TestDeleteRowScenario(t *testing.T) {
	e, _ := newEditor(t)
	id := mustInsert(t, e, model.KindTable)
	if err := e.RemoveRow(id.String()); err != nil {
		t.Fatal(err)
	}
	tbl := tableOf(t, e, id)
	tbl.Rows[0].Cells[0].Content = model.Text("first")
	tbl.Rows[1].Cells[0].Content = model.Text("second")

	if err := e.DeleteRow(id.String(), 0); err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 1 || tbl.MaxColumns != 3 || len(tbl.Rows[0].Cells) != 3 {
		t.Fatalf("table is %dx%d after delete", len(tbl.Rows), tbl.MaxColumns)
	}
	if got := tbl.Rows[0].Cells[0].Text(); got != "second" {
		t.Errorf("remaining row starts with %q, want second", got)
	}

	// floor
	if err := e.DeleteRow(id.String(), 0); err != nil {
		t.Errorf("DeleteRow at floor error = %v", err)
	}
	if len(tbl.Rows) != 1 {
		t.Errorf("rows = %d after delete at floor", len(tbl.Rows))
	}
}

func TestTableOperationsKeepGridRectangular(t *testing.T) {
	e, _ := newEditor(t)
	id := mustInsert(t, e, model.KindTable)
	h := id.String()
	tbl := tableOf(t, e, id)
	tbl.ColumnWidths = []float64{1, 1, 2}
	tbl.RowHeights = []float64{10, 10, 10}

	rng := rand.New(rand.NewPCG(7, 11))
	ops := []func() error{
		func() error { return e.AddRow(h) },
		func() error { return e.RemoveRow(h) },
		func() error { return e.AddColumn(h) },
		func() error { return e.RemoveColumn(h) },
		func() error { return e.DeleteRow(h, rng.IntN(len(tbl.Rows))) },
		func() error { return e.DeleteColumn(h, rng.IntN(tbl.MaxColumns)) },
	}
	for i := range 500 {
		if err := ops[rng.IntN(len(ops))](); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !tbl.Rectangular() {
			t.Fatalf("step %d: table not rectangular: %d columns, rows %v", i, tbl.MaxColumns, rowLengths(tbl))
		}
		if len(tbl.ColumnWidths) != tbl.MaxColumns || len(tbl.RowHeights) != len(tbl.Rows) {
			t.Fatalf("step %d: sizes out of sync: widths %d/%d heights %d/%d",
				i, len(tbl.ColumnWidths), tbl.MaxColumns, len(tbl.RowHeights), len(tbl.Rows))
		}
	}

	for range 10 {
		_ = e.RemoveRow(h)
		_ = e.RemoveColumn(h)
	}
	if len(tbl.Rows) != 1 || tbl.MaxColumns != 1 {
		t.Errorf("table shrank to %dx%d, want 1x1", len(tbl.Rows), tbl.MaxColumns)
	}
	if err := e.DeleteColumn(h, 5); err != nil {
		t.Errorf("DeleteColumn at floor error = %v", err)
	}
}

func rowLengths(tbl *model.Table) []int {
	var out []int
	for _, r := range tbl.Rows {
		out = append(out, len(r.Cells))
	}
	return out
}

func TestTableOperationErrors(t *testing.T) {
	e, _ := newEditor(t)
	id := mustInsert(t, e, model.KindTable)
	sid := mustInsert(t, e, model.KindSpacer)

	if err := e.DeleteRow(id.String(), 7); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DeleteRow out of range error = %v", err)
	}
	if err := e.AddRow(sid.String()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("AddRow on spacer error = %v", err)
	}
	if err := e.ToggleWrap(id.String(), 3, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ToggleWrap out of range error = %v", err)
	}
	if !errors.Is(e.ToggleWrap(id.String(), 3, 0), model.ErrOutOfRange) {
		t.Error("out of range cell error does not wrap model.ErrOutOfRange")
	}
	if err := e.AddRow("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddRow on missing error = %v", err)
	}
}

func TestTitleTable(t *testing.T) {
	e, _ := newEditor(t)
	mustInsert(t, e, model.KindTitle)
	if err := e.AddColumn("title"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddColumn on title without table error = %v", err)
	}

	e.Document().Title.Table = e.Defaults().NewTable(1, 2)
	if err := e.AddColumn("title"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetCellText("title", 0, 2, "logo"); err != nil {
		t.Fatal(err)
	}
	if got := e.Document().Title.Table.Rows[0].Cells[2].Text(); got != "logo" {
		t.Errorf("title cell text = %q", got)
	}
	if err := e.AddRow("title"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("AddRow on title error = %v", err)
	}
}

func TestToggleStyle(t *testing.T) {
	e, _ := newEditor(t)
	mustInsert(t, e, model.KindFooter)
	mustInsert(t, e, model.KindTitle)
	e.Document().Footer.Props = model.MustProps("Helvetica:10:000:center:1:0:0:0")

	if err := e.ToggleStyle("footer", model.StyleBitBold); err != nil {
		t.Fatal(err)
	}
	if got, want := e.Document().Footer.Props.String(), "Helvetica:10:100:center:1:0:0:0"; got != want {
		t.Errorf("footer props = %q, want %q", got, want)
	}

	title := e.Document().Title
	props, textProps := title.Props.String(), title.TextProps.String()
	for _, bit := range []model.StyleBit{model.StyleBitBold, model.StyleBitItalic, model.StyleBitUnderline} {
		if err := e.ToggleStyle("title", bit); err != nil {
			t.Fatal(err)
		}
		if title.TextProps.String() == textProps {
			t.Errorf("toggle %s did not change title text props", bit)
		}
		if err := e.ToggleStyle("title", bit); err != nil {
			t.Fatal(err)
		}
		if got := title.TextProps.String(); got != textProps {
			t.Errorf("double toggle %s: %q, want %q", bit, got, textProps)
		}
	}
	if title.Props.String() != props {
		t.Errorf("title props changed to %q", title.Props.String())
	}

	id := mustInsert(t, e, model.KindTable)
	if err := e.ToggleStyle(id.String(), model.StyleBitBold); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ToggleStyle on table error = %v", err)
	}
	if err := e.ToggleStyle("footer", model.StyleBit(5)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ToggleStyle with bad bit error = %v", err)
	}
}

func TestCellStyle(t *testing.T) {
	e, _ := newEditor(t)
	h := mustInsert(t, e, model.KindTable).String()
	tbl := tableOf(t, e, model.ID(h))

	orig := tbl.Rows[1].Cells[1].Props.String()
	_ = e.ToggleCellStyle(h, 1, 1, model.StyleBitItalic)
	if got := tbl.Rows[1].Cells[1].Props.String(); got != "Helvetica:12:010:left:1:1:1:1" {
		t.Errorf("italic cell props = %q", got)
	}
	_ = e.ToggleCellStyle(h, 1, 1, model.StyleBitItalic)
	if got := tbl.Rows[1].Cells[1].Props.String(); got != orig {
		t.Errorf("double toggle = %q, want %q", got, orig)
	}

	if err := e.SetCellAlignment(h, 0, 1, model.AlignmentRight); err != nil {
		t.Fatal(err)
	}
	if err := e.SetCellBorderPreset(h, 0, 1, model.BorderPresetNone); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Rows[0].Cells[1].Props.String(); got != "Helvetica:12:000:right:0:0:0:0" {
		t.Errorf("cell props = %q", got)
	}
	if got := tbl.Rows[0].Cells[0].Props.String(); got != orig {
		t.Errorf("neighbour cell props changed to %q", got)
	}

	if err := e.SetBorderPreset(h, model.BorderPresetBottom); err != nil {
		t.Fatal(err)
	}
	if err := e.SetAlignment(h, model.AlignmentCenter); err != nil {
		t.Fatal(err)
	}
	for _, r := range tbl.Rows {
		for _, c := range r.Cells {
			if got := c.Props.String(); got != "Helvetica:12:000:center:0:0:0:1" {
				t.Fatalf("table wide style not applied: %q", got)
			}
		}
	}
	if err := e.SetCellAlignment(h, 0, 0, model.Alignment("justify")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad alignment error = %v", err)
	}
}

func TestInsertFieldAndClearCell(t *testing.T) {
	e, _ := newEditor(t)
	h := mustInsert(t, e, model.KindTable).String()
	tbl := tableOf(t, e, model.ID(h))
	c := &tbl.Rows[0].Cells[0]

	_ = e.SetCellAlignment(h, 0, 0, model.AlignmentRight)
	_ = e.ToggleWrap(h, 0, 0)

	tests := []struct {
		kind    model.FieldKind
		variant string
	}{
		{model.FieldKindCheckbox, "form_field"},
		{model.FieldKindCheckboxSimple, "checkbox"},
		{model.FieldKindTextInput, "form_field"},
		{model.FieldKindRadio, "form_field"},
		{model.FieldKindRadioSimple, "radio"},
		{model.FieldKindImage, "image"},
		{model.FieldKindHyperlink, "hyperlink"},
	}
	for _, tt := range tests {
		_ = e.SetCellText(h, 0, 0, "leftover")
		if err := e.InsertField(h, 0, 0, tt.kind); err != nil {
			t.Fatalf("InsertField(%s): %v", tt.kind, err)
		}
		if got := c.Value().Variant(); got != tt.variant {
			t.Errorf("InsertField(%s) variant = %s, want %s", tt.kind, got, tt.variant)
		}
		if c.Text() == "leftover" {
			t.Errorf("InsertField(%s) kept previous text", tt.kind)
		}
		if got := c.Props.String(); got != "Helvetica:12:000:left:1:1:1:1" {
			t.Errorf("InsertField(%s) props = %q", tt.kind, got)
		}
	}

	if err := e.InsertField(h, 0, 1, model.FieldKindCheckbox); err != nil {
		t.Fatal(err)
	}
	a := tbl.Rows[0].Cells[1].Content.(model.FormField)
	if err := e.InsertField(h, 0, 2, model.FieldKindCheckbox); err != nil {
		t.Fatal(err)
	}
	b := tbl.Rows[0].Cells[2].Content.(model.FormField)
	if a.Name == b.Name || a.Name == "" {
		t.Errorf("field names not unique: %q %q", a.Name, b.Name)
	}

	if err := e.InsertField(h, 0, 0, model.FieldKind("slider")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown field kind error = %v", err)
	}

	if err := e.ClearCell(h, 0, 0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(model.Content(model.Text("")), c.Content); diff != "" {
		t.Errorf("cleared content (-want +got):\n%s", diff)
	}
	if !c.Wrapped() {
		t.Error("ClearCell dropped wrap flag")
	}
}

func TestCellContentEdits(t *testing.T) {
	e, _ := newEditor(t)
	h := mustInsert(t, e, model.KindTable).String()
	tbl := tableOf(t, e, model.ID(h))

	_ = e.SetCellText(h, 0, 0, "docs")
	_ = e.SetCellLink(h, 0, 0, "https://example.com")
	_ = e.SetCellText(h, 0, 0, "manual")
	if diff := cmp.Diff(model.Content(model.Hyperlink{Text: "manual", URL: "https://example.com"}), tbl.Rows[0].Cells[0].Content); diff != "" {
		t.Errorf("hyperlink (-want +got):\n%s", diff)
	}

	_ = e.InsertField(h, 0, 1, model.FieldKindCheckboxSimple)
	if err := e.SetCellChecked(h, 0, 1, true); err != nil {
		t.Fatal(err)
	}
	if tbl.Rows[0].Cells[1].Content != model.Content(model.Checkbox(true)) {
		t.Errorf("check box = %#v", tbl.Rows[0].Cells[1].Content)
	}
	if err := e.SetCellChecked(h, 0, 2, true); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetCellChecked on text error = %v", err)
	}

	_ = e.InsertField(h, 1, 0, model.FieldKindImage)
	if err := e.SetCellImage(h, 1, 0, "a.png", "AAAA"); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Rows[1].Cells[0].Content.(model.CellImage); got.Name != "a.png" || got.Data != "AAAA" {
		t.Errorf("cell image = %+v", got)
	}

	if err := e.ToggleWrap(h, 2, 2); err != nil {
		t.Fatal(err)
	}
	if !tbl.Rows[2].Cells[2].Wrapped() {
		t.Error("wrap not set")
	}
	_ = e.ToggleWrap(h, 2, 2)
	if tbl.Rows[2].Cells[2].Wrapped() {
		t.Error("wrap not cleared")
	}
}

func TestMove(t *testing.T) {
	e, _ := newEditor(t)
	a := mustInsert(t, e, model.KindTable)
	b := mustInsert(t, e, model.KindSpacer)
	c := mustInsert(t, e, model.KindImage)
	_ = e.Select(b.String())

	if err := e.Move(1, model.DirectionUp); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]model.ID{b, a, c}, bodyIDs(e)); diff != "" {
		t.Errorf("after move up (-want +got):\n%s", diff)
	}
	if e.Selection().ID != b {
		t.Errorf("selection = %s, want moved element %s", e.Selection().ID, b)
	}

	if err := e.Move(0, model.DirectionUp); err != nil {
		t.Errorf("move at top error = %v", err)
	}
	if err := e.Move(2, model.DirectionDown); err != nil {
		t.Errorf("move at bottom error = %v", err)
	}
	if diff := cmp.Diff([]model.ID{b, a, c}, bodyIDs(e)); diff != "" {
		t.Errorf("boundary moves changed order (-want +got):\n%s", diff)
	}
	if err := e.Move(3, model.DirectionUp); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("move out of range error = %v", err)
	}
}

func TestReorder(t *testing.T) {
	e, _ := newEditor(t)
	mustInsert(t, e, model.KindTitle)
	a := mustInsert(t, e, model.KindTable)
	b := mustInsert(t, e, model.KindSpacer)
	c := mustInsert(t, e, model.KindImage)
	mustInsert(t, e, model.KindFooter)

	if err := e.Reorder(c.String(), a.String()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]model.ID{c, a, b}, bodyIDs(e)); diff != "" {
		t.Errorf("reorder up (-want +got):\n%s", diff)
	}
	if err := e.Reorder(c.String(), b.String()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]model.ID{a, c, b}, bodyIDs(e)); diff != "" {
		t.Errorf("reorder down (-want +got):\n%s", diff)
	}

	// positional handles address current positions
	if err := e.Reorder("spacer-2", "table-0"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]model.ID{b, a, c}, bodyIDs(e)); diff != "" {
		t.Errorf("positional reorder (-want +got):\n%s", diff)
	}

	before := bodyIDs(e)
	for _, pair := range [][2]string{{"title", a.String()}, {a.String(), "footer"}, {a.String(), a.String()}} {
		if err := e.Reorder(pair[0], pair[1]); err != nil {
			t.Errorf("Reorder(%s, %s) error = %v", pair[0], pair[1], err)
		}
	}
	if diff := cmp.Diff(before, bodyIDs(e)); diff != "" {
		t.Errorf("rejected reorders changed body (-want +got):\n%s", diff)
	}

	// dragging a kind from the palette inserts new element
	if err := e.Reorder("spacer", a.String()); err != nil {
		t.Fatal(err)
	}
	if n := len(e.Document().Body); n != 4 {
		t.Fatalf("body has %d elements after palette drop", n)
	}
	if e.Document().Body[1].Kind() != model.KindSpacer || e.Document().Body[2].ID != a {
		t.Errorf("palette drop did not insert before target")
	}
}

func TestReorderPreservesElements(t *testing.T) {
	e, _ := newEditor(t)
	for i := range 8 {
		kind := []model.Kind{model.KindTable, model.KindSpacer, model.KindImage}[i%3]
		id := mustInsert(t, e, kind)
		_ = e.SetSpacerHeight(id.String(), float64(i))
		_ = e.SetImageSize(id.String(), float64(i+1), 1)
		_ = e.SetCellText(id.String(), 0, 0, id.String())
	}
	want := blockKeys(t, e.Document())

	rng := rand.New(rand.NewPCG(3, 5))
	for range 300 {
		n := len(e.Document().Body)
		if rng.IntN(2) == 0 {
			dir := model.DirectionUp
			if rng.IntN(2) == 0 {
				dir = model.DirectionDown
			}
			if err := e.Move(rng.IntN(n), dir); err != nil {
				t.Fatal(err)
			}
		} else {
			from, to := e.Document().Body[rng.IntN(n)].ID, e.Document().Body[rng.IntN(n)].ID
			if err := e.Reorder(from.String(), to.String()); err != nil {
				t.Fatal(err)
			}
		}
	}
	if diff := cmp.Diff(want, blockKeys(t, e.Document())); diff != "" {
		t.Errorf("element multiset changed (-want +got):\n%s", diff)
	}
}

func blockKeys(t *testing.T, doc *model.Document) []string {
	t.Helper()
	var keys []string
	for _, el := range doc.Body {
		data, err := json.Marshal(el.Block)
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, string(data))
	}
	slices.Sort(keys)
	return keys
}

func TestDelete(t *testing.T) {
	e, _ := newEditor(t)
	mustInsert(t, e, model.KindTitle)
	a := mustInsert(t, e, model.KindTable)
	b := mustInsert(t, e, model.KindSpacer)

	if err := e.SelectCell(a.String(), 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := e.Delete(a.String()); err != nil {
		t.Fatal(err)
	}
	if !e.Selection().Empty() {
		t.Errorf("selection not cleared: %+v", e.Selection())
	}
	if diff := cmp.Diff([]model.ID{b}, bodyIDs(e)); diff != "" {
		t.Errorf("body (-want +got):\n%s", diff)
	}

	_ = e.Select("title")
	if err := e.Delete("title"); err != nil {
		t.Fatal(err)
	}
	if e.Document().Title != nil || !e.Selection().Empty() {
		t.Error("title not removed or still selected")
	}
	if err := e.Delete("title"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing title error = %v", err)
	}
	if _, err := e.Insert(model.KindTitle, ""); err != nil {
		t.Errorf("insert title after delete: %v", err)
	}
}

func TestSelection(t *testing.T) {
	e, _ := newEditor(t)
	a := mustInsert(t, e, model.KindTable)
	b := mustInsert(t, e, model.KindTable)

	if err := e.SelectCell(a.String(), 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := e.Select(a.String()); err != nil {
		t.Fatal(err)
	}
	if sel := e.Selection(); sel.Cell == nil || *sel.Cell != (CellRef{Row: 2, Col: 2}) {
		t.Errorf("reselecting same element dropped cell: %+v", sel)
	}
	if err := e.Select(b.String()); err != nil {
		t.Fatal(err)
	}
	if sel := e.Selection(); sel.ID != b || sel.Cell != nil {
		t.Errorf("selection = %+v, want %s without cell", sel, b)
	}

	_ = e.SelectCell(a.String(), 2, 2)
	_ = e.DeleteRow(a.String(), 0)
	if sel := e.Selection(); sel.Cell == nil || *sel.Cell != (CellRef{Row: 1, Col: 2}) {
		t.Errorf("selected cell did not follow row delete: %+v", sel)
	}
	_ = e.DeleteRow(a.String(), 1)
	if sel := e.Selection(); sel.Cell != nil {
		t.Errorf("cell of deleted row kept: %+v", *sel.Cell)
	}
	if e.Selection().ID != a {
		t.Error("element selection lost after row delete")
	}

	if err := e.SelectCell(a.String(), 9, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SelectCell out of range error = %v", err)
	}
}

func TestClipboard(t *testing.T) {
	e, n := newEditor(t)
	mustInsert(t, e, model.KindTitle)
	a := mustInsert(t, e, model.KindTable)
	b := mustInsert(t, e, model.KindSpacer)

	if id, err := e.Paste(""); err != nil || id != "" {
		t.Errorf("paste from empty clipboard = %q, %v", id, err)
	}

	_ = e.SetCellText(a.String(), 0, 0, "original")
	if err := e.Copy(a.String()); err != nil {
		t.Fatal(err)
	}
	p1, err := e.Paste(a.String())
	if err != nil {
		t.Fatal(err)
	}
	p2, err := e.Paste("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]model.ID{a, p1, b, p2}, bodyIDs(e)); diff != "" {
		t.Fatalf("body after paste (-want +got):\n%s", diff)
	}

	_ = e.SetCellText(p1.String(), 0, 0, "changed")
	if got := tableOf(t, e, p2).Rows[0].Cells[0].Text(); got != "original" {
		t.Errorf("pasted copies share storage, second copy has %q", got)
	}
	if got := tableOf(t, e, a).Rows[0].Cells[0].Text(); got != "original" {
		t.Errorf("source changed through paste: %q", got)
	}

	if err := e.Copy("title"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Paste(""); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("paste second title error = %v", err)
	}
	if len(*n) != 1 {
		t.Errorf("notices = %v", *n)
	}

	if err := e.Cut("title"); err != nil {
		t.Fatal(err)
	}
	if e.Document().Title != nil {
		t.Fatal("cut did not remove title")
	}
	if id, err := e.Paste(b.String()); err != nil || id != model.TitleID {
		t.Errorf("paste title = %q, %v", id, err)
	}
	if e.Clipboard() != model.KindTitle {
		t.Errorf("clipboard kind = %s", e.Clipboard())
	}
}

func TestDuplicate(t *testing.T) {
	e, n := newEditor(t)
	mustInsert(t, e, model.KindFooter)
	a := mustInsert(t, e, model.KindImage)
	b := mustInsert(t, e, model.KindSpacer)

	d, err := e.Duplicate(a.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]model.ID{a, d, b}, bodyIDs(e)); diff != "" {
		t.Errorf("body (-want +got):\n%s", diff)
	}
	_ = e.SetImageSize(d.String(), 1, 1)
	if img := e.Document().Body[0].Block.(*model.Image); img.Width != 200 {
		t.Errorf("duplicate shares storage with source: %+v", img)
	}

	if _, err := e.Duplicate("footer"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate footer error = %v", err)
	}
	if len(*n) != 1 || (*n)[0] != "Only one footer allowed" {
		t.Errorf("notices = %v", *n)
	}
}

func TestSingletonInvariantUnderRandomOperations(t *testing.T) {
	e, _ := newEditor(t)
	rng := rand.New(rand.NewPCG(1, 2))
	handles := func() []string { return append(e.Handles(), "title", "footer") }
	pick := func() string { h := handles(); return h[rng.IntN(len(h))] }
	kinds := []model.Kind{model.KindTitle, model.KindFooter, model.KindTable, model.KindSpacer, model.KindImage}

	for range 1000 {
		switch rng.IntN(6) {
		case 0:
			_, _ = e.Insert(kinds[rng.IntN(len(kinds))], "")
		case 1:
			_ = e.Copy(pick())
		case 2:
			_, _ = e.Paste(pick())
		case 3:
			_, _ = e.Duplicate(pick())
		case 4:
			_ = e.Reorder(pick(), pick())
		case 5:
			if rng.IntN(3) == 0 {
				_ = e.Delete(pick())
			}
		}
		for _, el := range e.Document().Body {
			if el.Kind().Singleton() {
				t.Fatalf("singleton %s in body", el.Kind())
			}
		}
	}
	if err := e.Document().Validate(); err != nil {
		t.Errorf("document invalid after random operations: %v", err)
	}
}

func TestListenersAndReplace(t *testing.T) {
	e, _ := newEditor(t)
	calls := 0
	e.OnChange(func(*model.Document) { calls++ })

	a := mustInsert(t, e, model.KindSpacer)
	_ = e.Move(0, model.DirectionUp) // no-op
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}

	_ = e.Select(a.String())
	doc := e.Document().Clone()
	e.Replace(doc)
	if e.Selection().ID != a {
		t.Error("selection dropped although element still exists")
	}
	e.Replace(nil)
	if !e.Selection().Empty() {
		t.Error("selection kept after replacing with empty document")
	}
	if calls != 3 {
		t.Errorf("listener called %d times, want 3", calls)
	}
}

func TestSetters(t *testing.T) {
	e, _ := newEditor(t)
	mustInsert(t, e, model.KindTitle)
	mustInsert(t, e, model.KindFooter)
	img := mustInsert(t, e, model.KindImage)
	sp := mustInsert(t, e, model.KindSpacer)

	if err := e.SetText("title", "Invoice"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetText("footer", "Page"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetText(img.String(), "x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetText on image error = %v", err)
	}
	if err := e.SetImage(img.String(), "logo.png", "AAAA"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetImage(sp.String(), "logo.png", "AAAA"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetImage on spacer error = %v", err)
	}
	if err := e.SetImage("title", "logo.png", "AAAA"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetImage on title error = %v", err)
	}
	if err := e.SetLink(img.String(), "https://example.com"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetFont("footer", "Courier", 8); err != nil {
		t.Fatal(err)
	}
	if err := e.SetSpacerHeight(sp.String(), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative spacer height error = %v", err)
	}

	doc := e.Document()
	if doc.Title.Text != "Invoice" || doc.Footer.Text != "Page" || doc.Footer.Props.Font != "Courier" || doc.Footer.Props.Size != 8 {
		t.Errorf("title %+v footer %+v", doc.Title, doc.Footer)
	}
	if got := doc.Body[0].Block.(*model.Image); got.Name != "logo.png" || got.Link != "https://example.com" {
		t.Errorf("image = %+v", got)
	}

	cfg := model.DefaultConfig()
	cfg.Page = "LETTER"
	e.SetConfig(cfg)
	if doc.Config.Page != "LETTER" || doc.Config.EmbedFonts == cfg.EmbedFonts {
		t.Errorf("config = %+v", doc.Config)
	}
}

func TestLookup(t *testing.T) {
	e, _ := newEditor(t)
	sp := mustInsert(t, e, model.KindSpacer)
	img := mustInsert(t, e, model.KindImage)

	for h, want := range map[string]model.ID{
		img.String(): img,
		"image-1":    img,
		"spacer-0":   sp,
	} {
		got, err := e.Lookup(h)
		if err != nil || got != want {
			t.Errorf("Lookup(%q) = %q, %v, want %q", h, got, err, want)
		}
	}
	if _, err := e.Lookup("image-0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup of mismatched kind error = %v", err)
	}
	if _, err := e.Lookup("title"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup of absent title error = %v", err)
	}
}

func TestSelectedCellFollowsColumnDelete(t *testing.T) {
	e, _ := newEditor(t)
	a := mustInsert(t, e, model.KindTable)
	b := mustInsert(t, e, model.KindTable)

	if err := e.SelectCell(a.String(), 1, 2); err != nil {
		t.Fatal(err)
	}
	// other table does not move selection
	if err := e.DeleteColumn(b.String(), 0); err != nil {
		t.Fatal(err)
	}
	if sel := e.Selection(); sel.Cell == nil || *sel.Cell != (CellRef{Row: 1, Col: 2}) {
		t.Fatalf("selection moved by other table: %+v", sel)
	}

	if err := e.DeleteColumn(a.String(), 0); err != nil {
		t.Fatal(err)
	}
	if sel := e.Selection(); sel.Cell == nil || *sel.Cell != (CellRef{Row: 1, Col: 1}) {
		t.Fatalf("selected cell did not follow column delete: %+v", sel)
	}
	if err := e.DeleteColumn(a.String(), 1); err != nil {
		t.Fatal(err)
	}
	if sel := e.Selection(); sel.Cell != nil {
		t.Errorf("cell of deleted column kept: %+v", *sel.Cell)
	}
}

func TestInsertFieldNamesUnique(t *testing.T) {
	e, _ := newEditor(t)
	h := mustInsert(t, e, model.KindTable).String()
	tbl := tableOf(t, e, model.ID(h))

	seen := make(map[string]bool)
	for i := range 9 {
		r, c := i/3, i%3
		if err := e.InsertField(h, r, c, model.FieldKindTextInput); err != nil {
			t.Fatal(err)
		}
		name := tbl.Rows[r].Cells[c].Content.(model.FormField).Name
		if seen[name] {
			t.Fatalf("field name %q repeated after %d inserts", name, i)
		}
		seen[name] = true
	}
}

func TestAddRowWithoutColumnCount(t *testing.T) {
	doc := model.New(model.Config{})
	el := model.NewElement(&model.Table{MaxColumns: -1})
	doc.Insert(-1, el)
	e := New(doc, zaptest.NewLogger(t))

	if err := e.AddRow(el.ID.String()); err != nil {
		t.Fatalf("AddRow() error = %v", err)
	}
	if n := len(tableOf(t, e, el.ID).Rows); n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}
