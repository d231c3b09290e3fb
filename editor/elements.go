package editor

import (
	"fmt"

	"go.uber.org/zap"

	"tpledit/model"
)

// Insert creates default element of requested kind in front of element named
// by before, or at the end when before is empty. Returns handle of the new
// element.
func (e *Editor) Insert(kind model.Kind, before string) (model.ID, error) {
	switch kind {
	case model.KindTitle:
		if err := e.doc.SetTitle(e.defaults.NewTitle()); err != nil {
			return "", e.reject(err, singletonNotice(kind))
		}
		e.changed()
		return model.TitleID, nil
	case model.KindFooter:
		if err := e.doc.SetFooter(e.defaults.NewFooter()); err != nil {
			return "", e.reject(err, singletonNotice(kind))
		}
		e.changed()
		return model.FooterID, nil
	}

	block := e.defaults.NewBlock(kind)
	if block == nil {
		return "", fmt.Errorf("element kind %q: %w", kind, ErrInvalidArgument)
	}
	at, err := e.insertionPoint(before, false)
	if err != nil {
		return "", err
	}
	el := model.NewElement(block)
	e.doc.Insert(at, el)
	e.log.Debug("Element inserted", zap.Stringer("kind", kind), zap.Stringer("id", el.ID), zap.Int("index", at))
	e.changed()
	return el.ID, nil
}

// Delete removes element. Selection pointing to it is cleared.
func (e *Editor) Delete(h string) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	switch t.kind {
	case model.KindTitle:
		e.doc.Title = nil
	case model.KindFooter:
		e.doc.Footer = nil
	default:
		if _, err := e.doc.Remove(t.index); err != nil {
			return err
		}
	}
	if e.sel.ID == t.id {
		e.sel = Selection{}
	}
	e.log.Debug("Element deleted", zap.Stringer("kind", t.kind), zap.Stringer("id", t.id))
	e.changed()
	return nil
}

// Move swaps body element at index with its neighbour. Moving past either
// end does nothing.
func (e *Editor) Move(index int, dir model.Direction) error {
	if index < 0 || index >= len(e.doc.Body) {
		return fmt.Errorf("element %d of %d: %w", index, len(e.doc.Body), ErrInvalidArgument)
	}
	other := index
	switch dir {
	case model.DirectionUp:
		other--
	case model.DirectionDown:
		other++
	default:
		return fmt.Errorf("direction %q: %w", dir, ErrInvalidArgument)
	}
	if other < 0 || other >= len(e.doc.Body) {
		e.noop("move", "at boundary", zap.Int("index", index), zap.Stringer("direction", dir))
		return nil
	}
	e.doc.Body[index], e.doc.Body[other] = e.doc.Body[other], e.doc.Body[index]
	e.changed()
	return nil
}

// Reorder moves dragged element right in front of target. When dragged
// names element kind rather than existing element (drop from palette) new
// element is inserted instead. Title and footer have fixed places and are
// never reordered.
func (e *Editor) Reorder(dragged, target string) error {
	if kind, err := model.ParseKind(dragged); err == nil && kind != model.KindUnknown {
		if _, rerr := e.resolve(dragged); !kind.Singleton() || rerr != nil {
			_, err := e.Insert(kind, target)
			return err
		}
	}

	from, err := e.resolve(dragged)
	if err != nil {
		return err
	}
	to, err := e.resolve(target)
	if err != nil {
		return err
	}
	if from.singleton() || to.singleton() {
		e.noop("reorder", "title and footer are not reorderable", zap.String("dragged", dragged), zap.String("target", target))
		return nil
	}
	if from.id == to.id {
		e.noop("reorder", "dropped onto itself", zap.String("dragged", dragged))
		return nil
	}

	el, err := e.doc.Remove(from.index)
	if err != nil {
		return err
	}
	at := to.index
	if from.index < to.index {
		at--
	}
	e.doc.Insert(at, el)
	e.changed()
	return nil
}

// SetText replaces text of title or footer.
func (e *Editor) SetText(h, text string) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	switch t.kind {
	case model.KindTitle:
		e.doc.Title.Text = text
	case model.KindFooter:
		e.doc.Footer.Text = text
	default:
		return fmt.Errorf("set text on %s: %w", t.kind, ErrUnsupported)
	}
	e.changed()
	return nil
}

// SetLink replaces hyperlink target of title, footer or image.
func (e *Editor) SetLink(h, url string) error {
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	switch t.kind {
	case model.KindTitle:
		e.doc.Title.Link = url
	case model.KindFooter:
		e.doc.Footer.Link = url
	case model.KindImage:
		e.doc.Body[t.index].Block.(*model.Image).Link = url
	default:
		return fmt.Errorf("set link on %s: %w", t.kind, ErrUnsupported)
	}
	e.changed()
	return nil
}

func (e *Editor) image(h string) (*model.Image, error) {
	t, err := e.resolve(h)
	if err != nil {
		return nil, err
	}
	if t.kind != model.KindImage {
		return nil, fmt.Errorf("image operation on %s: %w", t.kind, ErrUnsupported)
	}
	return e.doc.Body[t.index].Block.(*model.Image), nil
}

// SetImage replaces picture of image element, data is base64 encoded.
func (e *Editor) SetImage(h, name, data string) error {
	img, err := e.image(h)
	if err != nil {
		return err
	}
	img.Name, img.Data = name, data
	e.changed()
	return nil
}

// SetImageSize changes display size of image element.
func (e *Editor) SetImageSize(h string, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size %gx%g: %w", width, height, ErrInvalidArgument)
	}
	img, err := e.image(h)
	if err != nil {
		return err
	}
	img.Width, img.Height = width, height
	e.changed()
	return nil
}

// SetSpacerHeight changes height of spacer element.
func (e *Editor) SetSpacerHeight(h string, height float64) error {
	if height < 0 {
		return fmt.Errorf("spacer height %g: %w", height, ErrInvalidArgument)
	}
	t, err := e.resolve(h)
	if err != nil {
		return err
	}
	if t.kind != model.KindSpacer {
		return fmt.Errorf("spacer height on %s: %w", t.kind, ErrUnsupported)
	}
	e.doc.Body[t.index].Block.(*model.Spacer).Height = height
	e.changed()
	return nil
}

// SetConfig replaces page configuration.
func (e *Editor) SetConfig(cfg model.Config) {
	e.doc.Config = cfg.Clone()
	e.changed()
}
