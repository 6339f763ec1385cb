package piece

import (
	tea "charm.land/bubbletea/v2"

	"furrow/board"
)

// Button is a pressable piece
type Button struct {
	label string
	key   string // Key that triggers the button
}

func NewButton(label, key string) Button {
	return Button{
		label: label,
		key:   key,
	}
}

func (b Button) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == b.key {
			return b, func() tea.Msg {
				return &PressedMsg{Label: b.label}
			}
		}
	}
	return b, nil
}

func (b Button) Render() string {
	return "[" + b.label + "]"
}
