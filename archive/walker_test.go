package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"
)

type zipEntry struct {
	name    string
	content string
	nonUTF8 bool
}

func makeZip(t *testing.T, entries ...zipEntry) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "set.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate, NonUTF8: e.nonUTF8})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(fw, e.content); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func names(t *testing.T, archive, prefix string) []string {
	t.Helper()
	var got []string
	err := Walk(context.Background(), archive, prefix, nil, func(_ context.Context, e *Entry) error {
		got = append(got, e.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return got
}

func TestWalkPrefix(t *testing.T) {
	arc := makeZip(t,
		zipEntry{name: "invoices/"},
		zipEntry{name: "invoices/a.json", content: "a"},
		zipEntry{name: "invoices/b.json", content: "b"},
		zipEntry{name: "orders/c.json", content: "c"},
		zipEntry{name: "README", content: "r"},
	)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"invoices/a.json", "invoices/b.json", "orders/c.json", "README"}},
		{"invoices/", []string{"invoices/a.json", "invoices/b.json"}},
		{"invoices/b", []string{"invoices/b.json"}},
		{"Orders/", nil},
		{"missing/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, names(t, arc, tt.prefix)); diff != "" {
				t.Errorf("visited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkContent(t *testing.T) {
	arc := makeZip(t, zipEntry{name: "a.json", content: `{"config":{}}`})

	err := Walk(context.Background(), arc, "", nil, func(_ context.Context, e *Entry) error {
		if e.Size() != 13 {
			t.Errorf("Size() = %d", e.Size())
		}
		r, err := e.Open()
		if err != nil {
			return err
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if string(data) != `{"config":{}}` {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWalkStops(t *testing.T) {
	arc := makeZip(t, zipEntry{name: "a.json"}, zipEntry{name: "b.json"}, zipEntry{name: "c.json"})

	stop := errors.New("stop")
	var seen int
	err := Walk(context.Background(), arc, "", nil, func(_ context.Context, e *Entry) error {
		seen++
		if e.Name == "b.json" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || seen != 2 {
		t.Errorf("err = %v, seen = %d", err, seen)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Walk(ctx, arc, "", nil, func(context.Context, *Entry) error {
		t.Error("visited after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestWalkInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := Walk(context.Background(), filepath.Join(dir, "none.zip"), "", nil, nil); err == nil {
		t.Error("expected error for missing archive")
	}

	broken := filepath.Join(dir, "broken.zip")
	if err := os.WriteFile(broken, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(context.Background(), broken, "", nil, nil); err == nil {
		t.Error("expected error for broken archive")
	}
}

func TestWalkUnsafePath(t *testing.T) {
	for _, name := range []string{"../escape.json", "a/../../b.json", "/abs.json", `..\win.json`, "C:/x.json"} {
		t.Run(name, func(t *testing.T) {
			arc := makeZip(t, zipEntry{name: "ok.json"}, zipEntry{name: name})
			err := Walk(context.Background(), arc, "", nil, func(context.Context, *Entry) error { return nil })
			if !errors.Is(err, ErrUnsafePath) {
				t.Errorf("err = %v, want ErrUnsafePath", err)
			}
		})
	}
}

func TestWalkCodePage(t *testing.T) {
	raw, err := charmap.CodePage866.NewEncoder().String("счет.json")
	if err != nil {
		t.Fatal(err)
	}
	arc := makeZip(t,
		zipEntry{name: raw, nonUTF8: true},
		zipEntry{name: "plain.json"},
	)

	var got []string
	err = Walk(context.Background(), arc, "сч", charmap.CodePage866, func(_ context.Context, e *Entry) error {
		if e.DecodeErr != nil {
			t.Errorf("DecodeErr = %v", e.DecodeErr)
		}
		if e.Raw != raw {
			t.Errorf("Raw = %q", e.Raw)
		}
		got = append(got, e.Name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"счет.json"}, got); diff != "" {
		t.Errorf("visited mismatch (-want +got):\n%s", diff)
	}

	// without code page name stays as stored
	if got := names(t, arc, ""); got[0] != raw {
		t.Errorf("Name = %q, want raw", got[0])
	}
}
