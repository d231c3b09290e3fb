// Package state keeps program wide environment passed to commands through
// context.
package state

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"tpledit/config"
)

type envKey struct{}

// LocalEnv is created once per run, filled by application Before hook and by
// command flags.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// output flags of commands producing files
	NoDirs    bool
	Overwrite bool
	// forced encoding of non UTF-8 file names inside zip archives
	CodePage encoding.Encoding

	done, failed atomic.Int64

	start         time.Time
	restoreStdLog func()
}

// ContextWithEnv returns context carrying fresh environment.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

// EnvFromContext panics when context was not prepared by ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("localenv not found in context")
	}
	return env
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// SetCodePage forces encoding by its IANA name and returns canonical name.
// Empty name resets it.
func (e *LocalEnv) SetCodePage(name string) (string, error) {
	e.CodePage = nil
	if len(name) == 0 {
		return "", nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return "", fmt.Errorf("character set %q is not supported", name)
	}
	e.CodePage = enc
	canonical, _ := ianaindex.IANA.Name(enc)
	return canonical, nil
}

// Count records outcome of processing single template.
func (e *LocalEnv) Count(err error) {
	if err != nil {
		e.failed.Add(1)
		return
	}
	e.done.Add(1)
}

// Counts returns number of templates processed successfully and failed.
func (e *LocalEnv) Counts() (done, failed int) {
	return int(e.done.Load()), int(e.failed.Load())
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log != nil {
		e.restoreStdLog = zap.RedirectStdLog(e.Log)
	}
}

// RestoreStdLog syncs program log and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
