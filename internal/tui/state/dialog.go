package state

import (
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/rs/zerolog"
)

// DialogMode is what the dialog is being used for.
type DialogMode int

const (
	ModeAdd DialogMode = iota
	ModeEdit
)

// String returns the label shown in the dialog header.
func (m DialogMode) String() string {
	if m == ModeEdit {
		return "EDIT"
	}
	return "ADD"
}

// DialogStatus is the controller's state machine position.
type DialogStatus int

const (
	DialogClosed DialogStatus = iota
	DialogOpenAdd
	DialogOpenEdit
)

// TaskWriter is the part of the task store the dialog commits to.
type TaskWriter interface {
	Create(description string) todo.Task
	Update(id int, description string) error
}

// DialogSnapshot is everything the dialog surface needs to render.
type DialogSnapshot struct {
	Visible bool   `json:"visible" yaml:"visible"`
	Mode    string `json:"mode" yaml:"mode"`
	Draft   string `json:"draft" yaml:"draft"`
}

// Dialog tracks the add/edit form: whether it is open, in which mode, and
// the uncommitted description. The draft is reset on every open.
type Dialog struct {
	status   DialogStatus
	mode     DialogMode
	draft    string
	targetID int
	store    TaskWriter
	log      zerolog.Logger
}

// NewDialog creates a closed dialog committing to store.
func NewDialog(store TaskWriter) *Dialog {
	return &Dialog{
		store: store,
		log:   logging.Component("dialog"),
	}
}

// OpenForAdd opens the dialog with an empty draft.
func (d *Dialog) OpenForAdd() {
	d.status = DialogOpenAdd
	d.mode = ModeAdd
	d.draft = ""
	d.targetID = 0
	d.log.Debug().Msg("opened for add")
}

// OpenForEdit opens the dialog with the task's description as the draft.
// Callers only offer this with a task selected.
func (d *Dialog) OpenForEdit(t todo.Task) {
	d.status = DialogOpenEdit
	d.mode = ModeEdit
	d.draft = t.Description
	d.targetID = t.ID
	d.log.Debug().Int("id", t.ID).Msg("opened for edit")
}

// UpdateDraft replaces the draft verbatim. Trimming happens in the store.
func (d *Dialog) UpdateDraft(text string) {
	if !d.Visible() {
		return
	}
	d.draft = text
}

// Submit commits the draft and closes the dialog. It reports whether the
// store changed; an edit whose task vanished is dropped silently.
func (d *Dialog) Submit() bool {
	var changed bool

	switch d.status {
	case DialogOpenAdd:
		t := d.store.Create(d.draft)
		d.log.Debug().Int("id", t.ID).Msg("submitted add")
		changed = true
	case DialogOpenEdit:
		if err := d.store.Update(d.targetID, d.draft); err != nil {
			d.log.Debug().Err(err).Int("id", d.targetID).Msg("edit target missing")
		} else {
			changed = true
		}
	default:
		return false
	}

	d.close()
	return changed
}

// Cancel closes the dialog without committing.
func (d *Dialog) Cancel() {
	if d.Visible() {
		d.log.Debug().Msg("cancelled")
	}
	d.close()
}

func (d *Dialog) close() {
	d.status = DialogClosed
	d.draft = ""
	d.targetID = 0
}

// Status returns the current state.
func (d *Dialog) Status() DialogStatus { return d.status }

// Visible reports whether the dialog is open.
func (d *Dialog) Visible() bool { return d.status != DialogClosed }

// Mode returns the mode of the current (or most recent) session.
func (d *Dialog) Mode() DialogMode { return d.mode }

// Draft returns the uncommitted description.
func (d *Dialog) Draft() string { return d.draft }

// TargetID returns the id being edited. Only meaningful in DialogOpenEdit.
func (d *Dialog) TargetID() int { return d.targetID }

// Title returns the dialog header, e.g. "ADD Task - Enter task description".
func (d *Dialog) Title() string {
	return d.mode.String() + " Task - Enter task description"
}

// Snapshot returns the render state for the dialog surface.
func (d *Dialog) Snapshot() DialogSnapshot {
	return DialogSnapshot{
		Visible: d.Visible(),
		Mode:    d.mode.String(),
		Draft:   d.draft,
	}
}
