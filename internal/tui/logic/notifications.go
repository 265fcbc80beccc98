package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

const appName = "todo-tui"

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

func clipboardWrite(text string) error {
	return clipboard.WriteAll(text)
}

// notifyAllDoneCmd sends a desktop notification once every task is
// complete. Failures are logged and shown in the status bar.
func (h *Handler) notifyAllDoneCmd() tea.Cmd {
	n := h.Store.Len()
	send := h.sendNotification
	log := h.log

	return func() tea.Msg {
		msg := fmt.Sprintf("All %d tasks complete", n)
		if err := send(appName, msg); err != nil {
			log.Warn().Err(err).Msg("desktop notification failed")
			return statusMsg{msg: msg}
		}
		log.Info().Int("tasks", n).Msg("all tasks complete")
		return statusMsg{msg: msg}
	}
}
