package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"tpledit/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty debug report. When destination cannot be created
// report goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{file: f, entries: make(map[string]*item)}, nil
}

// item is either a file linked by path, read when report is closed, or a
// snapshot taken when it was stored.
type item struct {
	source string
	data   []byte
	stamp  time.Time
}

func (it *item) snapshot() bool {
	return it.data != nil
}

// Report collects files and data for debug archive. All methods could be
// called on nil *Report, which means report was not requested.
type Report struct {
	mu      sync.Mutex
	file    *os.File
	entries map[string]*item
}

// Name returns absolute name of the report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store links file to the report. File content is taken when report is
// closed, so it is suitable for logs. Linking the same name to a different
// file keeps both under versioned names.
func (r *Report) Store(name, file string) {
	if r == nil {
		return
	}
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.entries[name]; ok && !old.snapshot() && old.source == file {
		return
	}
	r.add(name, &item{source: file})
}

// StoreData puts data into report under requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if data == nil {
		data = []byte{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.add(name, &item{data: slices.Clone(data), stamp: time.Now()})
}

// StoreCopy puts current content of the file into report, later changes to
// the file are not reflected.
func (r *Report) StoreCopy(name, file string) error {
	if r == nil {
		return nil
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}
	stamp := time.Now()
	if fi, err := os.Stat(abs); err == nil {
		stamp = fi.ModTime()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.add(name, &item{source: abs, data: data, stamp: stamp})
	return nil
}

// add stores item under name, or under name with numeric suffix when name is
// taken: "result.pdf", "result-2.pdf", "result-3.pdf"...
func (r *Report) add(name string, it *item) {
	name = path.Clean(filepath.ToSlash(name))
	if _, taken := r.entries[name]; !taken {
		r.entries[name] = it
		return
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		n := fmt.Sprintf("%s-%d%s", base, i, ext)
		if _, taken := r.entries[n]; !taken {
			r.entries[n] = it
			return
		}
	}
}

// Close writes report archive.
func (r *Report) Close() (err error) {
	if r == nil || r.file == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.write()
	err = multierr.Append(err, r.file.Close())
	r.file = nil
	return err
}

func (r *Report) write() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	now := time.Now()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})

	manifest := new(bytes.Buffer)
	for _, name := range names {
		it := r.entries[name]
		stamp := it.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(manifest, "%s\t%s\t%s\n", stamp.UTC().Format(time.UnixDate), name, it.source)
	}
	if err := addFile(arc, "MANIFEST", now, manifest); err != nil {
		return err
	}

	for _, name := range names {
		it := r.entries[name]
		if it.snapshot() {
			if err := addFile(arc, name, it.stamp, bytes.NewReader(it.data)); err != nil {
				return err
			}
			continue
		}
		if err := addLinked(arc, name, it.source); err != nil {
			return err
		}
	}
	return nil
}

// addLinked copies linked file into archive, absent files are skipped.
func addLinked(arc *zip.Writer, name, file string) error {
	fi, err := os.Stat(file)
	if err != nil || !fi.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return addFile(arc, name, fi.ModTime(), f)
}

func addFile(arc *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
