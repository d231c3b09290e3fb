// Package actions implements tpledit commands on top of the editing session.
package actions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tpledit/client"
	"tpledit/editor"
	"tpledit/session"
	"tpledit/state"
)

// sourceArg returns absolute path of the first argument.
func sourceArg(cmd *cli.Command) (string, error) {
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return "", errors.New("no input source has been specified")
	}
	return filepath.Abs(src)
}

// destinationArg returns absolute path of argument at index i, or current
// working directory when it is absent.
func destinationArg(cmd *cli.Command, i int, log *zap.Logger) (dst string, err error) {
	dst = cmd.Args().Get(i)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", err
	}
	if cmd.Args().Len() > i+1 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[i+1:]))
	}
	return dst, nil
}

// applyOutputFlags moves flags shared by commands producing files into
// environment.
func applyOutputFlags(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) {
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// zip does not define name encoding, old archives may need a code page
	cp := cmd.String("force-zip-cp")
	if len(cp) == 0 {
		return
	}
	name, err := env.SetCodePage(cp)
	if err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		return
	}
	log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", name))
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func newClient(env *state.LocalEnv) *client.Client {
	return client.New(env.Cfg.Service.BaseURL, env.Cfg.Service.Timeout, env.Log,
		client.WithToken(env.Cfg.Service.Token.Reveal()))
}

// newSession creates editing session configured from environment. Service
// may be nil for purely local work.
func newSession(env *state.LocalEnv, svc session.Service, opts ...session.Option) *session.Session {
	notices := editor.NotifierFunc(func(msg string) {
		env.Log.Warn("Editor notice", zap.String("notice", msg))
	})
	return session.New(svc, env.Log, append([]session.Option{
		session.WithDefaults(env.Cfg.Editor.Defaults()),
		session.WithImageLimits(env.Cfg.Editor.Images.Limits()),
		session.WithNotifier(notices),
	}, opts...)...)
}
