package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tpledit/fonts"
	"tpledit/session"
	"tpledit/state"
)

// Fonts lists fonts known to the service. When templates are given it
// reports fonts they use which service does not know.
func Fonts(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fonts")

	svc := newClient(env)
	if cmd.Args().Len() == 0 {
		return listFonts(ctx, fonts.NewCatalog(svc, env.Log), stdout(cmd))
	}
	src, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	applyOutputFlags(cmd, env, log)
	return checkFonts(ctx, svc, src, stdout(cmd), log)
}

func listFonts(ctx context.Context, cat *fonts.Catalog, w io.Writer) error {
	list, err := cat.Get(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDISPLAY NAME\tREFERENCE")
	for _, f := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.DisplayName, f.Reference)
	}
	return tw.Flush()
}

func checkFonts(ctx context.Context, svc fonts.Source, src string, w io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	// single catalog for all templates, service is asked once
	cat := fonts.NewCatalog(svc, env.Log)
	if _, err := cat.Get(ctx); err != nil {
		return err
	}

	var unknown int
	err := walkSource(ctx, src, log, func(ctx context.Context, r io.Reader, name string) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		sess := newSession(env, nil, session.WithCatalog(cat))
		if err := sess.Open(data, name); err != nil {
			return err
		}
		missing, err := sess.CheckFonts(ctx)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			unknown++
			fmt.Fprintf(w, "%s: %v\n", name, missing)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if unknown > 0 {
		log.Warn("Templates use fonts unknown to the service", zap.Int("templates", unknown))
	}
	return nil
}

// UploadFont sends font file to the service.
func UploadFont(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fonts")

	path := cmd.Args().Get(0)
	if len(path) == 0 {
		return errors.New("no font file has been specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read font: %w", err)
	}
	f, err := fonts.NewCatalog(newClient(env), env.Log).Upload(ctx, filepath.Base(path), data)
	if err != nil {
		return err
	}
	log.Info("Font is available", zap.String("name", f.Name), zap.String("id", f.ID))
	fmt.Fprintln(stdout(cmd), f.Name)
	return nil
}
