package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"tpledit/config"
	"tpledit/state"
)

// output names and writes files produced from templates under destination
// directory.
type output struct {
	env  *state.LocalEnv
	dst  string
	tmpl *template.Template // nil: names come from source
	log  *zap.Logger
}

func newOutput(env *state.LocalEnv, dst string, log *zap.Logger) *output {
	o := &output{env: env, dst: dst, log: log}
	if text := env.Cfg.Output.OutputNameTemplate; len(text) > 0 {
		tmpl, err := parseNameTemplate(text)
		if err != nil {
			log.Warn("Unable to parse output name template, using source names", zap.Error(err))
		} else {
			o.tmpl = tmpl
		}
	}
	return o
}

// name returns path for file produced from template src (relative to the
// source). Name template is used when values are given, it may introduce
// subdirectories with "/". Source directories are kept unless NoDirs.
func (o *output) name(values *Values, src, ext string) string {
	dir := o.dst
	if !o.env.NoDirs {
		dir = filepath.Join(o.dst, filepath.Dir(src))
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	parts := []string{dir}
	if values != nil && o.tmpl != nil {
		expanded, err := expandName(o.tmpl, values)
		if err != nil {
			o.log.Warn("Unable to expand output name template, using source name", zap.String("source", src), zap.Error(err))
		}
		for seg := range strings.FieldsFuncSeq(expanded, isSlash) {
			parts = append(parts, o.clean(seg))
		}
	}
	if len(parts) == 1 {
		parts = append(parts, o.clean(base))
	}
	parts[len(parts)-1] += ext
	return filepath.Join(parts...)
}

func isSlash(r rune) bool {
	return r == '/' || r == filepath.Separator
}

func (o *output) clean(segment string) string {
	if o.env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// write names file, stores data honoring overwrite setting and puts copy into
// debug report. Returns name of the written file.
func (o *output) write(values *Values, src, ext string, data []byte) (string, error) {
	name := o.name(values, src, ext)

	switch _, err := os.Stat(name); {
	case err == nil:
		if !o.env.Overwrite {
			return "", fmt.Errorf("output file already exists: %s", name)
		}
		o.log.Warn("Overwriting existing file", zap.String("file", name))
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
			return "", fmt.Errorf("unable to create output directory: %w", err)
		}
	default:
		return "", err
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return "", fmt.Errorf("unable to write output: %w", err)
	}

	if err := o.env.Rpt.StoreCopy("result-"+filepath.Base(name), name); err != nil {
		o.log.Warn("Unable to store result in debug report", zap.String("file", name), zap.Error(err))
	}
	return name, nil
}
