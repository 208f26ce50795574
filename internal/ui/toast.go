package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastWarning
	toastError
)

// toast is a transient footer notice. It clears itself when its deadline
// passes; a newer toast supersedes an older one outright.
type toast struct {
	text     string
	level    toastLevel
	deadline time.Time
}

const toastDuration = 4 * time.Second

type toastExpireMsg time.Time

func (t toast) active() bool {
	return t.text != "" && time.Now().Before(t.deadline)
}

// showToast replaces the current toast and schedules its expiry.
func (m *Model) showToast(text string, level toastLevel) tea.Cmd {
	m.toast = toast{text: text, level: level, deadline: time.Now().Add(toastDuration)}
	return tea.Tick(toastDuration, func(t time.Time) tea.Msg {
		return toastExpireMsg(t)
	})
}

func (m Model) renderToast() string {
	if !m.toast.active() {
		return ""
	}
	switch m.toast.level {
	case toastError:
		return m.styles.ToastError.Render(m.toast.text)
	case toastWarning:
		return m.styles.ToastWarning.Render(m.toast.text)
	default:
		return m.styles.ToastInfo.Render(m.toast.text)
	}
}
