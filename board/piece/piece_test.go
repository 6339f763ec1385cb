package piece

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(text)[0], Text: text}
}

func TestCheckbox(t *testing.T) {

	cb := NewCheckbox(false)
	assert.Equal(t, "[ ]", cb.Render())

	pc, cmd := cb.Update(key("t"))
	require.NotNil(t, cmd)
	assert.Equal(t, &CheckedMsg{Checked: true}, cmd())
	assert.Equal(t, "[x]", pc.Render())

	pc, cmd = pc.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	require.NotNil(t, cmd)
	assert.Equal(t, "[ ]", pc.Render())

	_, cmd = pc.Update(key("x"))
	assert.Nil(t, cmd)
}

func TestOperator(t *testing.T) {

	op := NewOperator([]string{"contains", "==", "<="}, 9)
	assert.Equal(t, "contains", op.Render(), "out of range selection starts at the first option")

	pc, cmd := op.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, &OperatorChangedMsg{Selected: "<=", Index: 2}, cmd())
	assert.Equal(t, "<=", pc.Render())

	pc, _ = pc.Update(key("l"))
	assert.Equal(t, "contains", pc.Render())

	empty := NewOperator(nil, 0)
	assert.Equal(t, "?", empty.Render())
	_, cmd = empty.Update(key("l"))
	assert.Nil(t, cmd)
}

func TestTextInput(t *testing.T) {

	var pc interface {
		Render() string
	}

	ti := NewTextInput("ab", 4)
	assert.Equal(t, 2, ti.Cursor())

	updated, cmd := ti.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Nil(t, cmd, "moving the cursor changes nothing")

	updated, cmd = updated.Update(key("x"))
	require.NotNil(t, cmd)
	assert.Equal(t, &ValueChangedMsg{Value: "axb"}, cmd())

	updated, _ = updated.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.Equal(t, "ax b", updated.Render())

	updated, cmd = updated.Update(key("y"))
	assert.Nil(t, cmd, "max length reached")

	updated, _ = updated.Update(tea.KeyPressMsg{Code: tea.KeyHome})
	updated, _ = updated.Update(tea.KeyPressMsg{Code: tea.KeyDelete})
	updated, _ = updated.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	updated, _ = updated.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	pc = updated
	assert.Equal(t, "x ", pc.Render())

	unicode := NewTextInput("김", 0)
	updated, _ = unicode.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "", updated.Render())
}

func TestButton(t *testing.T) {

	btn := NewButton("Submit", "enter")
	assert.Equal(t, "[Submit]", btn.Render())

	_, cmd := btn.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, &PressedMsg{Label: "Submit"}, cmd())

	_, cmd = btn.Update(key("s"))
	assert.Nil(t, cmd)
}

func TestLabel(t *testing.T) {

	lbl := NewLabel("category")
	pc, cmd := lbl.Update(key("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, "category", pc.Render())
}
