package components

// SelectionChangedMsg is emitted when the set of highlighted rows changes.
type SelectionChangedMsg struct {
	IDs []int
}

// ToggleCompleteMsg is emitted when a row's completion box is toggled.
type ToggleCompleteMsg struct {
	ID int
}

// AddRequestMsg is emitted by the empty-state "Add task +" affordance.
type AddRequestMsg struct{}

// DialogSubmitMsg is emitted when the dialog's Submit is pressed.
type DialogSubmitMsg struct{}

// DialogCancelMsg is emitted when the dialog's Cancel is pressed.
type DialogCancelMsg struct{}

// SearchChangedMsg is emitted whenever the search text changes.
type SearchChangedMsg struct {
	Query string
}

// SearchDoneMsg is emitted when the search box gives focus back.
type SearchDoneMsg struct{}

// CloseHelpMsg is emitted when the help view is dismissed.
type CloseHelpMsg struct{}
