package actions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"tpledit/editor"
	"tpledit/session"
	"tpledit/state"
)

// step is a single script entry. Picture data starting with "@" names file
// (relative to the script) which is prepared before embedding, with "cell"
// set picture goes into table cell instead of image element.
type step struct {
	editor.Command `yaml:",inline"`
	Cell           bool `yaml:"cell,omitempty"`
}

type script struct {
	dir   string
	steps []step
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read script: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var steps []step
	if err := dec.Decode(&steps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse script %q: %w", path, err)
	}
	return &script{dir: filepath.Dir(path), steps: steps}, nil
}

// run executes script steps in order stopping at first failure.
func (s *script) run(sess *session.Session, log *zap.Logger) error {
	ed := sess.Editor()
	for i, st := range s.steps {
		if st.Action == editor.ActionSetImage {
			if err := s.image(sess, st); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
			}
			continue
		}
		id, err := ed.Dispatch(st.Command)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
		if id != "" {
			log.Debug("Element created", zap.Int("step", i+1), zap.Stringer("id", id))
		}
	}
	return nil
}

func (s *script) image(sess *session.Session, st step) error {
	var cell *editor.CellRef
	if st.Cell {
		cell = &editor.CellRef{Row: st.Row, Col: st.Col}
	}
	file, ok := strings.CutPrefix(st.Data, "@")
	if !ok {
		if cell != nil {
			return sess.Editor().SetCellImage(st.Handle, cell.Row, cell.Col, st.Name, st.Data)
		}
		return sess.Editor().SetImage(st.Handle, st.Name, st.Data)
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(s.dir, file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read picture: %w", err)
	}
	name := st.Name
	if name == "" {
		name = filepath.Base(file)
	}
	return sess.EmbedImage(st.Handle, cell, name, data)
}

// Apply runs editing script against templates found in the source.
func Apply(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("apply")

	sc, err := loadScript(cmd.String("script"))
	if err != nil {
		return err
	}
	src, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	dst, err := destinationArg(cmd, 1, log)
	if err != nil {
		return err
	}
	applyOutputFlags(cmd, env, log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Int("steps", len(sc.steps)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return apply(ctx, sc, src, dst, log)
}

func apply(ctx context.Context, sc *script, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	out := newOutput(env, dst, log)

	return walkSource(ctx, src, log, func(ctx context.Context, r io.Reader, name string) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		sess := newSession(env, nil)
		if err := sess.Open(data, name); err != nil {
			return err
		}
		if err := sc.run(sess, log); err != nil {
			return fmt.Errorf("unable to apply script to %s: %w", name, err)
		}
		saved, err := sess.Save()
		if err != nil {
			return err
		}
		outputName, err := out.write(nil, name, templateExt, saved)
		if err != nil {
			return err
		}
		log.Info("Script applied", zap.String("from", name), zap.String("to", outputName))
		return nil
	})
}
