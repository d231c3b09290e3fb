package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"tpledit/archive"
	"tpledit/state"
)

// visitFunc is called for every template found in the source. name is
// template path relative to the source: base name for a single file, path
// under directory or inside archive otherwise.
type visitFunc func(ctx context.Context, r io.Reader, name string) error

const templateExt = ".json"

func isTemplateName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), templateExt)
}

type sourceKind int

const (
	sourceFile sourceKind = iota
	sourceDir
	sourceArchive
)

// source is resolved SOURCE argument.
type source struct {
	kind  sourceKind
	path  string // existing file or directory
	inner string // slash separated path inside archive
}

// locate finds the longest existing prefix of src, the rest of it may only
// address something inside an archive.
func locate(src string) (source, error) {
	p, inner := filepath.Clean(src), ""
	for {
		fi, err := os.Stat(p)
		if err == nil {
			return classify(src, p, inner, fi)
		}
		parent := filepath.Dir(p)
		if parent == p {
			return source{}, fmt.Errorf("input source was not found (%s)", src)
		}
		inner = path.Join(filepath.Base(p), inner)
		p = parent
	}
}

func classify(src, p, inner string, fi os.FileInfo) (source, error) {
	notFound := func() (source, error) {
		return source{}, fmt.Errorf("input source was not found (%s) => (%s)", p, inner)
	}
	switch {
	case fi.IsDir():
		if len(inner) > 0 {
			return notFound()
		}
		return source{kind: sourceDir, path: p}, nil
	case !fi.Mode().IsRegular():
		return source{}, fmt.Errorf("unexpected path mode for (%s)", src)
	}

	arc, err := isArchiveFile(p)
	if err != nil {
		return source{}, fmt.Errorf("unable to check archive type: %w", err)
	}
	if arc {
		return source{kind: sourceArchive, path: p, inner: inner}, nil
	}
	if len(inner) > 0 {
		return notFound()
	}
	return source{kind: sourceFile, path: p}, nil
}

func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// walkSource calls visit for every template the source addresses: a single
// file, every template under directory (archives found there included) or
// under path inside archive. Failures of individual templates in directories
// and archives are logged and do not stop the walk. Outcomes are counted in
// the environment.
func walkSource(ctx context.Context, src string, log *zap.Logger, visit visitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	fn := func(ctx context.Context, r io.Reader, name string) error {
		err := visit(ctx, r, name)
		env.Count(err)
		return err
	}

	s, err := locate(src)
	if err != nil {
		return err
	}
	switch s.kind {
	case sourceDir:
		if err := walkDir(ctx, s.path, log, fn); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
	case sourceArchive:
		prefix := s.inner
		if len(prefix) > 0 && !isTemplateName(prefix) {
			prefix += "/"
		}
		if err := walkArchive(ctx, s.path, prefix, "", log, fn); err != nil {
			return fmt.Errorf("unable to process archive: %w", err)
		}
	default:
		f, err := os.Open(s.path)
		if err != nil {
			return err
		}
		defer f.Close()
		return fn(ctx, f, filepath.Base(s.path))
	}
	return nil
}

// walkDir visits templates and archives under dir, symbolic links are not
// followed.
func walkDir(ctx context.Context, dir string, log *zap.Logger, fn visitFunc) error {
	found := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", p), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		arc, err := isArchiveFile(p)
		switch {
		case err != nil:
			log.Warn("Skipping file", zap.String("file", p), zap.Error(err))
		case arc:
			found++
			if err := walkArchive(ctx, p, "", filepath.Dir(rel), log, fn); err != nil {
				if ctx.Err() != nil {
					return err
				}
				log.Error("Unable to process archive", zap.String("file", p), zap.Error(err))
			}
		case isTemplateName(p):
			found++
			if err := visitFile(ctx, p, rel, fn); err != nil {
				if ctx.Err() != nil {
					return err
				}
				log.Error("Unable to process file", zap.String("file", p), zap.Error(err))
			}
		default:
			log.Debug("Skipping file, not recognized as template or archive", zap.String("file", p))
		}
		return nil
	})
	if err == nil && found == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

func visitFile(ctx context.Context, p, name string, fn visitFunc) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(ctx, f, name)
}

// walkArchive visits templates inside archive whose names start with prefix.
// Names passed to fn are put under dir.
func walkArchive(ctx context.Context, arc, prefix, dir string, log *zap.Logger, fn visitFunc) error {
	cp := state.EnvFromContext(ctx).CodePage
	found := 0

	err := archive.Walk(ctx, arc, prefix, cp, func(ctx context.Context, e *archive.Entry) error {
		if e.DecodeErr != nil {
			n, _ := ianaindex.IANA.Name(cp)
			log.Warn("Unable to convert archive name from specified encoding",
				zap.String("charset", n), zap.String("path", e.Raw), zap.Error(e.DecodeErr))
		}
		if !isTemplateName(e.Name) {
			log.Debug("Skipping file, not recognized as template", zap.String("archive", arc), zap.String("file", e.Name))
			return nil
		}
		found++

		r, err := e.Open()
		if err == nil {
			err = fn(ctx, r, filepath.Join(dir, filepath.FromSlash(e.Name)))
			r.Close()
		}
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
	if err == nil && found == 0 {
		log.Debug("Nothing to process", zap.String("archive", arc))
	}
	return err
}
