// Package editor implements structural editing of a template document.
// Every operation either succeeds keeping document invariants, does nothing
// (requests which make no sense in current state, logged at debug level) or
// returns typed error leaving document untouched.
package editor

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tpledit/model"
)

// Notifier delivers short transient messages to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Listener is called after every change of the document.
type Listener func(doc *model.Document)

// Editor owns the live document of a session together with selection and
// clipboard. It is not safe for concurrent use, all calls are expected to
// come from single dispatch path.
type Editor struct {
	log       *zap.Logger
	doc       *model.Document
	defaults  model.Defaults
	notifier  Notifier
	listeners []Listener

	sel  Selection
	clip clipboard
}

// Option configures Editor.
type Option func(*Editor)

// WithDefaults replaces defaults used for newly created elements and cells.
func WithDefaults(d model.Defaults) Option {
	return func(e *Editor) { e.defaults = d }
}

// WithNotifier sets receiver of user notices.
func WithNotifier(n Notifier) Option {
	return func(e *Editor) {
		if n != nil {
			e.notifier = n
		}
	}
}

// New creates editor for the document, nil document means new empty one with
// default page configuration.
func New(doc *model.Document, log *zap.Logger, opts ...Option) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	if doc == nil {
		doc = model.New(model.DefaultConfig())
	}
	e := &Editor{
		log:      log.Named("editor"),
		doc:      doc,
		defaults: model.DefaultSettings(),
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the live document. Callers must not modify it directly.
func (e *Editor) Document() *model.Document {
	return e.doc
}

// Defaults returns settings used for new elements.
func (e *Editor) Defaults() model.Defaults {
	return e.defaults
}

// OnChange registers listener called after every document change.
func (e *Editor) OnChange(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Replace swaps whole document, used when template is loaded or text buffer
// is committed. Selection is kept only if it still names an element.
func (e *Editor) Replace(doc *model.Document) {
	if doc == nil {
		doc = model.New(model.DefaultConfig())
	}
	e.doc = doc
	if e.sel.ID != "" {
		if _, err := e.resolve(e.sel.ID.String()); err != nil {
			e.sel = Selection{}
		} else {
			e.dropStaleCell()
		}
	}
	e.changed()
}

func (e *Editor) changed() {
	for _, l := range e.listeners {
		l(e.doc)
	}
}

func (e *Editor) noop(op, reason string, fields ...zap.Field) {
	e.log.Debug("Nothing to do", append([]zap.Field{zap.String("op", op), zap.String("reason", reason)}, fields...)...)
}

// reject reports user visible refusal.
func (e *Editor) reject(err error, msg string) error {
	e.notifier.Notify(msg)
	e.log.Debug("Operation rejected", zap.String("notice", msg), zap.Error(err))
	return err
}

// target is resolved handle.
type target struct {
	id    model.ID
	kind  model.Kind
	index int // position in body, -1 for title and footer
}

func (t target) singleton() bool {
	return t.kind.Singleton()
}

// resolve maps external handle to element. Accepted handles are element
// identities, "title", "footer" and positional "<kind>-<index>" form where
// index is position in the body.
func (e *Editor) resolve(h string) (target, error) {
	switch model.ID(h) {
	case model.TitleID:
		if e.doc.Title == nil {
			return target{}, fmt.Errorf("title: %w", ErrNotFound)
		}
		return target{id: model.TitleID, kind: model.KindTitle, index: -1}, nil
	case model.FooterID:
		if e.doc.Footer == nil {
			return target{}, fmt.Errorf("footer: %w", ErrNotFound)
		}
		return target{id: model.FooterID, kind: model.KindFooter, index: -1}, nil
	}
	if i := e.doc.IndexOf(model.ID(h)); i >= 0 {
		return target{id: e.doc.Body[i].ID, kind: e.doc.Body[i].Kind(), index: i}, nil
	}
	if kind, index, ok := positional(h); ok {
		if index < len(e.doc.Body) && e.doc.Body[index].Kind() == kind {
			return target{id: e.doc.Body[index].ID, kind: kind, index: index}, nil
		}
	}
	return target{}, fmt.Errorf("handle %q: %w", h, ErrNotFound)
}

func positional(h string) (model.Kind, int, bool) {
	name, num, ok := strings.Cut(h, "-")
	if !ok {
		return "", 0, false
	}
	kind, err := model.ParseKind(name)
	if err != nil || !kind.Body() {
		return "", 0, false
	}
	index, err := strconv.Atoi(num)
	if err != nil || index < 0 {
		return "", 0, false
	}
	return kind, index, true
}

// Lookup returns stable identity of element named by handle.
func (e *Editor) Lookup(h string) (model.ID, error) {
	t, err := e.resolve(h)
	if err != nil {
		return "", err
	}
	return t.id, nil
}

// Handles returns current handles of all elements in display order.
func (e *Editor) Handles() []string {
	items := e.doc.Flatten()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID.String()
	}
	return out
}

// insertionPoint converts optional neighbour handle into body position.
// Title places element first, footer or empty handle - last.
func (e *Editor) insertionPoint(h string, after bool) (int, error) {
	if h == "" {
		return len(e.doc.Body), nil
	}
	t, err := e.resolve(h)
	if err != nil {
		return 0, err
	}
	switch t.kind {
	case model.KindTitle:
		return 0, nil
	case model.KindFooter:
		return len(e.doc.Body), nil
	}
	if after {
		return t.index + 1, nil
	}
	return t.index, nil
}

func singletonNotice(kind model.Kind) string {
	return fmt.Sprintf("Only one %s allowed", kind)
}
