package message

import (
	tea "charm.land/bubbletea/v2"

	nt "furrow/entity"
)

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// SetFilterCmd returns a command applying set
func SetFilterCmd(set nt.Set) tea.Cmd {
	return func() tea.Msg {
		return SetFilterMsg{Set: set}
	}
}
