package piece

import (
	tea "charm.land/bubbletea/v2"

	"furrow/board"
)

// TextInput is an editable text piece
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
}

func NewTextInput(value string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = 100
	}
	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

func (t TextInput) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}

	oldValue := string(t.value)
	t.value = append([]rune{}, t.value...)

	switch key := keyMsg.String(); key {
	case "backspace":
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
		}
	case "delete":
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor], t.value[t.cursor+1:]...)
		}
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
	case "home", "ctrl+a":
		t.cursor = 0
	case "end", "ctrl+e":
		t.cursor = len(t.value)
	default:
		text := []rune(keyMsg.Text)
		if key == "space" {
			text = []rune{' '}
		}
		if len(text) == 1 && len(t.value) < t.maxLength {
			t.value = append(t.value[:t.cursor], append(text, t.value[t.cursor:]...)...)
			t.cursor++
		}
	}

	// Only send message if value changed
	if string(t.value) != oldValue {
		value := string(t.value)
		return t, func() tea.Msg {
			return &ValueChangedMsg{Value: value}
		}
	}
	return t, nil
}

func (t TextInput) Value() string {
	return string(t.value)
}

func (t TextInput) Cursor() int {
	return t.cursor
}

func (t TextInput) Render() string {
	return string(t.value)
}
