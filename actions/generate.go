package actions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tpledit/session"
	"tpledit/state"
	"tpledit/xfdf"
)

const pdfExt = ".pdf"

// Generate produces PDF documents from local templates or from template
// stored by the service.
func Generate(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	name := cmd.String("name")
	src, dstIndex := "", 0
	if len(name) == 0 {
		var err error
		if src, err = sourceArg(cmd); err != nil {
			return err
		}
		dstIndex = 1
	}
	dst, err := destinationArg(cmd, dstIndex, log)
	if err != nil {
		return err
	}
	applyOutputFlags(cmd, env, log)

	g := &generator{
		env:    env,
		svc:    newClient(env),
		out:    newOutput(env, dst, log),
		verify: cmd.Bool("verify"),
		fonts:  cmd.Bool("check-fonts"),
		log:    log,
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("name", name), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if len(name) > 0 {
		return g.remote(ctx, name)
	}
	return walkSource(ctx, src, log, g.local)
}

type generator struct {
	env    *state.LocalEnv
	svc    session.Service
	out    *output
	verify bool
	fonts  bool
	log    *zap.Logger
}

func (g *generator) local(ctx context.Context, r io.Reader, name string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	sess := newSession(g.env, g.svc, session.WithVerify(g.verify))
	if err := sess.Open(data, name); err != nil {
		return err
	}
	return g.produce(ctx, sess, name)
}

func (g *generator) remote(ctx context.Context, name string) error {
	sess := newSession(g.env, g.svc, session.WithVerify(g.verify))
	if err := sess.LoadTemplate(ctx, name); err != nil {
		return err
	}
	return g.produce(ctx, sess, name+templateExt)
}

func (g *generator) produce(ctx context.Context, sess *session.Session, name string) error {
	if g.fonts {
		missing, err := sess.CheckFonts(ctx)
		if err != nil {
			return fmt.Errorf("unable to check fonts: %w", err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("template %s uses fonts unknown to the service: %v", name, missing)
		}
	}
	pdf, err := sess.GeneratePDF(ctx)
	if err != nil {
		return err
	}
	outputName, err := g.out.write(newValues(sess.Document(), name, time.Now()), name, pdfExt, pdf)
	if err != nil {
		return err
	}
	g.log.Info("Document generated", zap.String("from", name), zap.String("to", outputName), zap.Int("size", len(pdf)))
	return nil
}

// Fill sends PDF with form field values of the template to the service and
// stores filled document.
func Fill(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fill")

	pdfPath := cmd.String("pdf")
	if len(pdfPath) == 0 {
		return errors.New("no PDF to fill has been specified")
	}
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("unable to read pdf: %w", err)
	}
	var values map[string]string
	if path := cmd.String("values"); len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read field values: %w", err)
		}
		if values, err = xfdf.Values(data); err != nil {
			return err
		}
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

	return fill(ctx, newClient(env), pdf, values, src, dst, log)
}

func fill(ctx context.Context, svc session.Service, pdf []byte, values map[string]string, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	out := newOutput(env, dst, log)

	return walkSource(ctx, src, log, func(ctx context.Context, r io.Reader, name string) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		sess := newSession(env, svc)
		if err := sess.Open(data, name); err != nil {
			return err
		}
		if values != nil {
			n, err := sess.ImportValues(values)
			if err != nil {
				log.Warn("Some field values were not applied", zap.String("template", name), zap.Error(err))
			}
			log.Debug("Field values imported", zap.String("template", name), zap.Int("fields", n))
		}
		filled, err := sess.FillPDF(ctx, pdf)
		if err != nil {
			return err
		}
		outputName, err := out.write(nil, name, "-filled"+pdfExt, filled)
		if err != nil {
			return err
		}
		log.Info("Document filled", zap.String("from", name), zap.String("to", outputName))
		return nil
	})
}

// Export writes form fields of templates found in the source as XFDF.
func Export(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("xfdf")

	src, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	dst, err := destinationArg(cmd, 1, log)
	if err != nil {
		return err
	}
	applyOutputFlags(cmd, env, log)

	return export(ctx, src, dst, log)
}

func export(ctx context.Context, src, dst string, log *zap.Logger) error {
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
		doc := sess.Document()
		if len(xfdf.Fields(doc)) == 0 {
			log.Debug("Nothing to export", zap.String("template", name))
			return nil
		}
		buf := new(bytes.Buffer)
		if err := xfdf.Export(doc, name, buf); err != nil {
			return err
		}
		outputName, err := out.write(nil, name, ".xfdf", buf.Bytes())
		if err != nil {
			return err
		}
		log.Info("Form fields exported", zap.String("from", name), zap.String("to", outputName))
		return nil
	})
}
