package editor

import (
	"fmt"

	"tpledit/model"
)

// Command is a single named editing action with its arguments. Only fields
// relevant for the action are used.
type Command struct {
	Action    Action             `yaml:"action"`
	Handle    string             `yaml:"handle,omitempty"`
	Target    string             `yaml:"target,omitempty"`
	Kind      model.Kind         `yaml:"kind,omitempty"`
	Index     *int               `yaml:"index,omitempty"`
	Direction model.Direction    `yaml:"direction,omitempty"`
	Row       int                `yaml:"row,omitempty"`
	Col       int                `yaml:"col,omitempty"`
	Bit       model.StyleBit     `yaml:"bit,omitempty"`
	Align     model.Alignment    `yaml:"align,omitempty"`
	Preset    model.BorderPreset `yaml:"preset,omitempty"`
	Field     model.FieldKind    `yaml:"field,omitempty"`
	Font      string             `yaml:"font,omitempty"`
	Size      float64            `yaml:"size,omitempty"`
	Text      string             `yaml:"text,omitempty"`
	URL       string             `yaml:"url,omitempty"`
	Name      string             `yaml:"name,omitempty"`
	Data      string             `yaml:"data,omitempty"`
	Width     float64            `yaml:"width,omitempty"`
	Height    float64            `yaml:"height,omitempty"`
	Checked   bool               `yaml:"checked,omitempty"`
}

// Dispatch executes command. For actions creating elements handle of the
// new element is returned.
func (e *Editor) Dispatch(cmd Command) (model.ID, error) {
	switch cmd.Action {
	case ActionInsert:
		return e.Insert(cmd.Kind, cmd.Target)
	case ActionPaste:
		return e.Paste(cmd.Target)
	case ActionDuplicate:
		return e.Duplicate(cmd.Handle)
	}
	return "", e.dispatch(cmd)
}

func (e *Editor) dispatch(cmd Command) error {
	h, r, c := cmd.Handle, cmd.Row, cmd.Col
	switch cmd.Action {
	case ActionDelete:
		return e.Delete(h)
	case ActionMove:
		index, err := e.commandIndex(cmd)
		if err != nil {
			return err
		}
		return e.Move(index, cmd.Direction)
	case ActionReorder:
		return e.Reorder(h, cmd.Target)
	case ActionCopy:
		return e.Copy(h)
	case ActionCut:
		return e.Cut(h)
	case ActionSelect:
		return e.Select(h)
	case ActionSelectCell:
		return e.SelectCell(h, r, c)
	case ActionToggleStyle:
		return e.ToggleStyle(h, cmd.Bit)
	case ActionToggleCellStyle:
		return e.ToggleCellStyle(h, r, c, cmd.Bit)
	case ActionSetAlignment:
		return e.SetAlignment(h, cmd.Align)
	case ActionSetCellAlignment:
		return e.SetCellAlignment(h, r, c, cmd.Align)
	case ActionSetBorderPreset:
		return e.SetBorderPreset(h, cmd.Preset)
	case ActionSetCellBorderPreset:
		return e.SetCellBorderPreset(h, r, c, cmd.Preset)
	case ActionSetFont:
		return e.SetFont(h, cmd.Font, cmd.Size)
	case ActionAddRow:
		return e.AddRow(h)
	case ActionRemoveRow:
		return e.RemoveRow(h)
	case ActionAddColumn:
		return e.AddColumn(h)
	case ActionRemoveColumn:
		return e.RemoveColumn(h)
	case ActionDeleteRow:
		return e.DeleteRow(h, r)
	case ActionDeleteColumn:
		return e.DeleteColumn(h, c)
	case ActionToggleWrap:
		return e.ToggleWrap(h, r, c)
	case ActionInsertField:
		return e.InsertField(h, r, c, cmd.Field)
	case ActionClearCell:
		return e.ClearCell(h, r, c)
	case ActionSetText:
		return e.SetText(h, cmd.Text)
	case ActionSetLink:
		return e.SetLink(h, cmd.URL)
	case ActionSetCellText:
		return e.SetCellText(h, r, c, cmd.Text)
	case ActionSetCellLink:
		return e.SetCellLink(h, r, c, cmd.URL)
	case ActionSetCellChecked:
		return e.SetCellChecked(h, r, c, cmd.Checked)
	case ActionSetImage:
		return e.SetImage(h, cmd.Name, cmd.Data)
	case ActionSetImageSize:
		return e.SetImageSize(h, cmd.Width, cmd.Height)
	case ActionSetSpacerHeight:
		return e.SetSpacerHeight(h, cmd.Height)
	}
	return fmt.Errorf("action %q: %w", cmd.Action, ErrInvalidArgument)
}

// commandIndex takes body position either directly or from handle.
func (e *Editor) commandIndex(cmd Command) (int, error) {
	if cmd.Index != nil {
		return *cmd.Index, nil
	}
	t, err := e.resolve(cmd.Handle)
	if err != nil {
		return 0, err
	}
	if t.index < 0 {
		return 0, fmt.Errorf("move %s: %w", t.kind, ErrUnsupported)
	}
	return t.index, nil
}
