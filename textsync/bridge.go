// Package textsync keeps editable JSON text of a template in step with the
// document model. At any moment exactly one side is authoritative: while user
// edits the text the model is left alone, when editing ends the text is
// either accepted as a whole or rejected leaving model untouched.
package textsync

import (
	"fmt"

	"go.uber.org/zap"

	"tpledit/codec"
	"tpledit/editor"
	"tpledit/model"
)

// Bridge connects editor with the text buffer.
type Bridge struct {
	log      *zap.Logger
	ed       *editor.Editor
	notifier editor.Notifier
	state    State
	text     string
	dirty    bool
}

// New creates bridge in model authoritative state with text rendered from
// current editor document.
func New(ed *editor.Editor, log *zap.Logger, n editor.Notifier) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	if n == nil {
		n = editor.NotifierFunc(func(string) {})
	}
	b := &Bridge{
		log:      log.Named("textsync"),
		ed:       ed,
		notifier: n,
		state:    StateModelAuthoritative,
	}
	ed.OnChange(b.modelChanged)
	b.modelChanged(ed.Document())
	return b
}

// State returns authoritative side.
func (b *Bridge) State() State {
	return b.state
}

// Text returns current buffer content.
func (b *Bridge) Text() string {
	return b.text
}

// Dirty reports whether buffer was edited since editing started.
func (b *Bridge) Dirty() bool {
	return b.dirty
}

// BeginEdit hands authority to the text buffer.
func (b *Bridge) BeginEdit() {
	if b.state == StateTextAuthoritative {
		return
	}
	b.state = StateTextAuthoritative
	b.dirty = false
	b.log.Debug("Text editing started")
}

// SetText replaces buffer content, editing is started if needed.
func (b *Bridge) SetText(text string) {
	b.BeginEdit()
	b.text = text
	b.dirty = true
}

// EndEdit returns authority to the model. Unchanged buffer is simply
// dropped. Edited buffer is decoded and replaces the document as a whole,
// when it cannot be decoded document stays as it was, user is notified and
// the error is returned. Buffer keeps rejected text until next model change.
func (b *Bridge) EndEdit() error {
	if b.state == StateModelAuthoritative {
		return nil
	}
	b.state = StateModelAuthoritative
	if !b.dirty {
		b.log.Debug("Text editing finished without changes")
		b.modelChanged(b.ed.Document())
		return nil
	}
	b.dirty = false
	return b.commit([]byte(b.text))
}

// Load decodes template and makes it the current document regardless of
// state. Text editing in progress is abandoned.
func (b *Bridge) Load(data []byte) error {
	b.state = StateModelAuthoritative
	b.dirty = false
	return b.commit(data)
}

// Revert discards buffer content and renders it again from the model.
func (b *Bridge) Revert() {
	b.state = StateModelAuthoritative
	b.dirty = false
	b.modelChanged(b.ed.Document())
}

func (b *Bridge) commit(data []byte) error {
	cfg := b.ed.Document().Config
	doc, err := codec.Decode(data, &cfg, b.log)
	if err != nil {
		b.log.Warn("Template text rejected, document left unchanged", zap.Error(err))
		b.notifier.Notify(fmt.Sprintf("Invalid template: %v", err))
		return err
	}
	b.ed.Replace(doc)
	return nil
}

func (b *Bridge) modelChanged(doc *model.Document) {
	if b.state != StateModelAuthoritative {
		return
	}
	data, err := codec.Encode(doc)
	if err != nil {
		b.log.Error("Unable to render template text", zap.Error(err))
		return
	}
	b.text = string(data)
}
