// Package session ties together everything a single template editing session
// needs: the editor owning the document, the text buffer bridge, the font
// catalog and the generation service.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tpledit/codec"
	"tpledit/editor"
	"tpledit/fonts"
	"tpledit/model"
	"tpledit/textsync"
	"tpledit/utils/images"
	"tpledit/xfdf"
)

// Service is the remote side of the session.
type Service interface {
	fonts.Source
	Template(ctx context.Context, name string) ([]byte, error)
	Generate(ctx context.Context, template []byte) ([]byte, error)
	Fill(ctx context.Context, pdf, xfdf []byte) ([]byte, error)
}

var (
	ErrNoService = errors.New("generation service is not configured")
	ErrNoFields  = errors.New("template has no form fields")
)

// Session is single writer, callers must not use it from several goroutines.
type Session struct {
	log      *zap.Logger
	svc      Service
	ed       *editor.Editor
	bridge   *textsync.Bridge
	catalog  *fonts.Catalog
	notifier editor.Notifier
	defaults model.Defaults
	limits   images.Limits
	verify   bool
	name     string
}

type Option func(*Session)

// WithDefaults sets settings for newly inserted elements.
func WithDefaults(d model.Defaults) Option {
	return func(s *Session) {
		s.defaults = d
	}
}

// WithImageLimits sets how embedded pictures are prepared.
func WithImageLimits(lim images.Limits) Option {
	return func(s *Session) {
		s.limits = lim
	}
}

// WithNotifier sets receiver of transient user notices.
func WithNotifier(n editor.Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithCatalog shares font catalog between sessions talking to the same
// service.
func WithCatalog(cat *fonts.Catalog) Option {
	return func(s *Session) {
		s.catalog = cat
	}
}

// WithVerify makes GeneratePDF check produced document structure.
func WithVerify(verify bool) Option {
	return func(s *Session) {
		s.verify = verify
	}
}

// New creates session with empty document. Service may be nil, in which case
// only local operations are available.
func New(svc Service, log *zap.Logger, opts ...Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		log:      log.Named("session"),
		svc:      svc,
		notifier: editor.NotifierFunc(func(string) {}),
		defaults: model.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ed = editor.New(nil, log, editor.WithDefaults(s.defaults), editor.WithNotifier(s.notifier))
	s.bridge = textsync.New(s.ed, log, s.notifier)
	if svc != nil && s.catalog == nil {
		s.catalog = fonts.NewCatalog(svc, log)
	}
	return s
}

func (s *Session) Editor() *editor.Editor { return s.ed }

func (s *Session) Bridge() *textsync.Bridge { return s.bridge }

func (s *Session) Document() *model.Document { return s.ed.Document() }

// Fonts returns font catalog, nil when session has neither service nor
// shared catalog.
func (s *Session) Fonts() *fonts.Catalog { return s.catalog }

// Name returns name of the loaded template, if any.
func (s *Session) Name() string { return s.name }

// Open makes template data the current document.
func (s *Session) Open(data []byte, name string) error {
	if err := s.bridge.Load(data); err != nil {
		return fmt.Errorf("unable to open template %q: %w", name, err)
	}
	s.name = name
	s.log.Debug("Template opened", zap.String("name", name), zap.Int("elements", len(s.ed.Document().Body)))
	return nil
}

// LoadTemplate fetches template by name from the service and opens it.
func (s *Session) LoadTemplate(ctx context.Context, name string) error {
	if s.svc == nil {
		return ErrNoService
	}
	data, err := s.svc.Template(ctx, name)
	if err != nil {
		return fmt.Errorf("unable to load template %q: %w", name, err)
	}
	return s.Open(data, name)
}

// Save returns canonical form of the current document. Pending text edit is
// committed first, if text cannot be accepted nothing is returned.
func (s *Session) Save() ([]byte, error) {
	if err := s.settle(); err != nil {
		return nil, err
	}
	return codec.Encode(s.ed.Document())
}

func (s *Session) settle() error {
	if s.bridge.State() != textsync.StateTextAuthoritative {
		return nil
	}
	if err := s.bridge.EndEdit(); err != nil {
		return fmt.Errorf("pending text edit rejected: %w", err)
	}
	return nil
}

// GeneratePDF sends current document to the service and returns produced PDF.
func (s *Session) GeneratePDF(ctx context.Context) ([]byte, error) {
	if s.svc == nil {
		return nil, ErrNoService
	}
	data, err := s.Save()
	if err != nil {
		return nil, err
	}
	pdf, err := s.svc.Generate(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("unable to generate pdf: %w", err)
	}
	if s.verify {
		pages, err := Verify(pdf)
		if err != nil {
			return nil, err
		}
		s.log.Debug("Generated PDF verified", zap.Int("pages", pages), zap.Int("size", len(pdf)))
	}
	return pdf, nil
}

// FillPDF sends PDF together with form field values of the current document
// to the service and returns filled PDF.
func (s *Session) FillPDF(ctx context.Context, pdf []byte) ([]byte, error) {
	if s.svc == nil {
		return nil, ErrNoService
	}
	if err := s.settle(); err != nil {
		return nil, err
	}
	doc := s.ed.Document()
	if len(xfdf.Fields(doc)) == 0 {
		return nil, ErrNoFields
	}
	buf := new(bytes.Buffer)
	if err := xfdf.Export(doc, s.name, buf); err != nil {
		return nil, err
	}
	out, err := s.svc.Fill(ctx, pdf, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("unable to fill pdf: %w", err)
	}
	return out, nil
}

var disableConfigDir sync.Once

// Verify reads PDF structure and returns number of pages.
func Verify(pdf []byte) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdf), pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("produced pdf is invalid: %w", err)
	}
	return ctx.PageCount, nil
}

// ImportValues sets form fields of the document from values keyed by field
// name, as returned by xfdf.Values. Unknown names are ignored, it returns
// number of fields changed.
func (s *Session) ImportValues(values map[string]string) (int, error) {
	var (
		n    int
		errs error
	)
	for _, f := range xfdf.Cells(s.ed.Document()) {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		var err error
		switch f.Kind {
		case model.FormFieldKindText:
			err = s.ed.SetCellText(f.Handle, f.Row, f.Col, v)
		case model.FormFieldKindRadio:
			err = s.ed.SetCellChecked(f.Handle, f.Row, f.Col, v == f.Value)
		default:
			err = s.ed.SetCellChecked(f.Handle, f.Row, f.Col, v != "" && v != xfdf.Off)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("field %q: %w", f.Name, err))
			continue
		}
		n++
	}
	return n, errs
}

// EmbedImage prepares picture and puts it into image element, or into table
// cell when cell is not nil. Display width of image element is kept and
// height follows picture proportions.
func (s *Session) EmbedImage(h string, cell *editor.CellRef, name string, data []byte) error {
	out, info, err := images.Prepare(data, s.limits, s.log)
	if err != nil {
		return fmt.Errorf("unable to embed %q: %w", name, err)
	}
	encoded := images.EncodeData(out)
	if cell != nil {
		return s.ed.SetCellImage(h, cell.Row, cell.Col, name, encoded)
	}
	id, err := s.ed.Lookup(h)
	if err != nil {
		return err
	}
	if err := s.ed.SetImage(id.String(), name, encoded); err != nil {
		return err
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil
	}
	doc := s.ed.Document()
	w := doc.Body[doc.IndexOf(id)].Block.(*model.Image).Width
	if w <= 0 {
		w = s.defaults.ImageWidth
	}
	return s.ed.SetImageSize(id.String(), w, w*float64(info.Height)/float64(info.Width))
}

// UploadFont sends font file to the service through the catalog.
func (s *Session) UploadFont(ctx context.Context, filename string, data []byte) (fonts.Font, error) {
	if s.catalog == nil {
		return fonts.Font{}, ErrNoService
	}
	return s.catalog.Upload(ctx, filename, data)
}

// UsedFonts returns names of fonts referenced by the document in order of
// first appearance.
func UsedFonts(doc *model.Document) []string {
	var names []string
	add := func(p model.Props) {
		if p.Font != "" && !slices.Contains(names, p.Font) {
			names = append(names, p.Font)
		}
	}
	if doc.Title != nil {
		add(doc.Title.Props)
		add(doc.Title.TextProps)
	}
	for _, t := range doc.Tables() {
		for _, r := range t.Rows {
			for _, c := range r.Cells {
				add(c.Props)
			}
		}
	}
	if doc.Footer != nil {
		add(doc.Footer.Props)
	}
	return names
}

// CheckFonts returns fonts used by the document which service does not know
// about and which are not embedded through page configuration.
func (s *Session) CheckFonts(ctx context.Context) ([]string, error) {
	if s.catalog == nil {
		return nil, ErrNoService
	}
	doc := s.ed.Document()
	var missing []string
	for _, name := range UsedFonts(doc) {
		if slices.ContainsFunc(doc.Config.CustomFonts, func(f model.CustomFont) bool { return f.Name == name }) {
			continue
		}
		_, ok, err := s.catalog.Find(ctx, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		s.log.Warn("Document uses unknown fonts", zap.Strings("fonts", missing))
	}
	return missing, nil
}
