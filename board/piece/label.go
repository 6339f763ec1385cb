package piece

import (
	tea "charm.land/bubbletea/v2"

	"furrow/board"
)

// Label is a read-only piece
type Label struct {
	text string
}

func NewLabel(text string) Label {
	return Label{text: text}
}

func (l Label) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	return l, nil
}

func (l Label) Render() string {
	return l.text
}
