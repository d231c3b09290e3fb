package actions

import (
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"tpledit/config"
	"tpledit/model"
)

// Values are available to output name template.
type Values struct {
	Name  string // template file name without extension
	Title string // pdfTitle, or text of the title block
	Page  string
	Stamp time.Time
}

func newValues(doc *model.Document, name string, stamp time.Time) *Values {
	v := &Values{
		Name:  strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
		Title: doc.Config.PDFTitle,
		Page:  doc.Config.Page,
		Stamp: stamp,
	}
	if len(v.Title) == 0 && doc.Title != nil {
		v.Title = doc.Title.Text
	}
	return v
}

// parseNameTemplate prepares configured template once per command. Unknown
// fields are errors rather than "<no value>" in file names.
func parseNameTemplate(text string) (*template.Template, error) {
	return template.New(string(config.OutputNameTemplateFieldName)).
		Funcs(sprig.FuncMap()).
		Option("missingkey=error").
		Parse(text)
}

func expandName(tmpl *template.Template, values *Values) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
