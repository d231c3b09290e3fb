package actions

import (
	"context"
	"fmt"
	"io"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tpledit/codec"
	"tpledit/model"
	"tpledit/state"
)

// Normalize rewrites templates found in the source in canonical form.
func Normalize(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("normalize")

	src, err := sourceArg(cmd)
	if err != nil {
		return err
	}
	dst, err := destinationArg(cmd, 1, log)
	if err != nil {
		return err
	}
	applyOutputFlags(cmd, env, log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return normalize(ctx, src, dst, log)
}

func normalize(ctx context.Context, src, dst string, log *zap.Logger) error {
	out := newOutput(state.EnvFromContext(ctx), dst, log)
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
		encoded, err := codec.Encode(doc)
		if err != nil {
			return fmt.Errorf("unable to encode template (%s): %w", name, err)
		}
		outputName, err := out.write(nil, name, templateExt, encoded)
		if err != nil {
			return err
		}
		log.Info("Template normalized", zap.String("from", name), zap.String("to", outputName), zap.Int("elements", len(doc.Body)))
		return nil
	})
}
