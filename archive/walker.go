// Package archive reads template sets packed into zip files.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// ErrUnsafePath is returned when archive has entry which would escape
// directory it is unpacked to.
var ErrUnsafePath = errors.New("unsafe path in archive")

// Entry is a regular file stored in archive.
type Entry struct {
	// Name is entry path with forward slashes. When archive does not mark
	// name as UTF-8 and code page was given, it is decoded.
	Name string
	// Raw is the name as it is stored in archive.
	Raw string
	// DecodeErr is set when name could not be decoded, Name is Raw then.
	DecodeErr error

	file *zip.File
}

// Open returns reader for entry content.
func (e *Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}

// Size is uncompressed size of entry.
func (e *Entry) Size() uint64 {
	return e.file.UncompressedSize64
}

// VisitFunc is called for every entry Walk selects. Returning an error stops
// the walk and Walk returns it.
type VisitFunc func(ctx context.Context, e *Entry) error

// Walk visits regular files of archive whose (decoded) names start with
// prefix, in the order they are stored. cp may be nil.
func Walk(ctx context.Context, archive, prefix string, cp encoding.Encoding, fn VisitFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !safePath(f.Name) {
			return fmt.Errorf("%w: %q", ErrUnsafePath, f.Name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		e := entry(f, cp)
		if !strings.HasPrefix(e.Name, prefix) {
			continue
		}
		if err := fn(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func entry(f *zip.File, cp encoding.Encoding) *Entry {
	e := &Entry{Name: f.Name, Raw: f.Name, file: f}
	if cp == nil || !f.NonUTF8 {
		return e
	}
	if n, err := cp.NewDecoder().String(f.Name); err != nil {
		e.DecodeErr = err
	} else {
		e.Name = n
	}
	return e
}

// safePath rejects absolute names and names with ".." elements.
func safePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || (len(name) > 1 && name[1] == ':') {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
