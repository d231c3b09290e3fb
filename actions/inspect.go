package actions

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tpledit/codec"
	"tpledit/model"
	"tpledit/session"
	"tpledit/state"
	"tpledit/xfdf"
)

// Inspect prints structure of templates found in the source.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	applyOutputFlags(cmd, env, log)

	return inspect(ctx, src, cmd.Bool("fields"), stdout(cmd), log)
}

func inspect(ctx context.Context, src string, fields bool, w io.Writer, log *zap.Logger) error {
	base := model.DefaultConfig()

	return walkSource(ctx, src, log, func(ctx context.Context, r io.Reader, name string) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		doc, err := codec.Decode(data, &base, log)
		if err != nil {
			return fmt.Errorf("unable to decode template (%s): %w", name, err)
		}

		fmt.Fprintf(w, "== %s\n%s", name, doc.String())
		for _, e := range multierr.Errors(doc.Validate()) {
			fmt.Fprintf(w, "invalid: %v\n", e)
		}
		fmt.Fprintf(w, "fonts: %v\n", session.UsedFonts(doc))
		if fields {
			for _, f := range xfdf.Fields(doc) {
				fmt.Fprintf(w, "field: %s [%s] = %q at %s(%d,%d)\n", f.Name, f.Kind, f.Value, f.Handle, f.Row, f.Col)
			}
		}
		return nil
	})
}
