package wizardpanel

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furrow/board/piece"
	"furrow/message"
)

var (
	next   = tea.KeyPressMsg{Code: tea.KeyPgDown}
	prev   = tea.KeyPressMsg{Code: tea.KeyPgUp}
	down   = tea.KeyPressMsg{Code: tea.KeyDown}
	enter  = tea.KeyPressMsg{Code: tea.KeyEnter}
	submit = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

// run feeds msg to the panel and any resulting message back in, as the program would.
func run(pnl Panel, msg tea.Msg) (Panel, tea.Msg) {

	pnl, cmd := pnl.Update(msg)
	if cmd == nil {
		return pnl, nil
	}
	out := cmd()
	pnl, _ = pnl.Update(out)
	return pnl, out
}

func typed(pnl Panel, text string) Panel {
	for _, r := range text {
		pnl, _ = run(pnl, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return pnl
}

func filled(t *testing.T) Panel {
	t.Helper()

	pnl, err := NewPanel()
	require.NoError(t, err)
	pnl, _ = run(pnl, tea.KeyPressMsg{Code: tea.KeyRight})
	pnl, _ = run(pnl, down)
	pnl = typed(pnl, "123-45-67890")
	pnl, _ = run(pnl, down)
	pnl = typed(pnl, "Green Acres")
	pnl, _ = run(pnl, down)
	pnl = typed(pnl, "Kim")

	pnl, _ = run(pnl, next)
	pnl, _ = run(pnl, tea.KeyPressMsg{Code: 't', Text: "t"})
	pnl, _ = run(pnl, down)
	pnl, _ = run(pnl, down)
	pnl, _ = run(pnl, tea.KeyPressMsg{Code: 't', Text: "t"})

	return pnl
}

func TestSteps(t *testing.T) {

	pnl, err := NewPanel()
	require.NoError(t, err)
	assert.Equal(t, 0, pnl.Wizard().Current())

	pnl, _ = run(pnl, prev)
	assert.Equal(t, 0, pnl.Wizard().Current(), "previous on first step is a no-op")

	pnl, _ = run(pnl, next)
	pnl, _ = run(pnl, next)
	assert.Equal(t, 2, pnl.Wizard().Current())

	pnl, _ = run(pnl, next)
	assert.Equal(t, 2, pnl.Wizard().Current(), "next on last step is a no-op")

	pnl, _ = run(pnl, prev)
	assert.Equal(t, 1, pnl.Wizard().Current())
}

func TestForm(t *testing.T) {

	app := filled(t).Application()

	assert.Equal(t, Application{
		BusinessType:       Corporation,
		RegistrationNumber: "123-45-67890",
		CompanyName:        "Green Acres",
		Owner:              "Kim",
		Expertise:          []string{"Combine", "Livestock"},
	}, app)
}

func TestSubmitOnlyOnLastStep(t *testing.T) {

	pnl := filled(t)

	_, msg := run(pnl, submit)
	assert.Nil(t, msg, "submit before the last step does nothing")

	pnl, _ = run(pnl, next)
	require.True(t, pnl.Wizard().CanSubmit())

	_, msg = run(pnl, submit)
	submitted, ok := msg.(SubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Green Acres", submitted.Application.CompanyName)

	_, msg = run(pnl, enter)
	_, ok = msg.(*piece.PressedMsg)
	require.True(t, ok, "enter presses the submit button")
}

func TestSubmitButton(t *testing.T) {

	pnl := filled(t)
	pnl, _ = run(pnl, next)

	pnl, cmd := pnl.Update(enter)
	require.NotNil(t, cmd)

	_, cmd = pnl.Update(cmd())
	require.NotNil(t, cmd)

	_, ok := cmd().(SubmittedMsg)
	assert.True(t, ok)
}

func TestSubmitInvalid(t *testing.T) {

	pnl, err := NewPanel()
	require.NoError(t, err)
	pnl, _ = run(pnl, next)
	pnl, _ = run(pnl, next)

	_, msg := run(pnl, submit)
	errMsg, ok := msg.(message.ErrorMsg)
	require.True(t, ok)
	assert.ErrorContains(t, errMsg.Err, "registration number")
}

func TestValidate(t *testing.T) {

	good := Application{BusinessType: Individual, RegistrationNumber: "000-00-00000", CompanyName: "x", Owner: "y"}
	assert.NoError(t, good.Validate())

	bad := good
	bad.BusinessType = "Cooperative"
	assert.Error(t, bad.Validate())

	bad = good
	bad.RegistrationNumber = "0000000000"
	assert.Error(t, bad.Validate())

	bad = good
	bad.Owner = ""
	assert.ErrorContains(t, bad.Validate(), "owner")
}

func TestForms(t *testing.T) {

	app := Application{BusinessType: Corporation, Expertise: Expertise[:2]}

	brd, err := businessForm(app)
	require.NoError(t, err)
	assert.Len(t, brd.Pieces(rankOwner), 2)

	brd, err = expertiseForm(app)
	require.NoError(t, err)
	for rank := range Expertise {
		assert.Len(t, brd.Pieces(rank), 2)
	}

	brd, err = confirmForm(app)
	require.NoError(t, err)
	assert.Len(t, brd.Pieces(0), 1)
}

func TestRender(t *testing.T) {

	pnl, err := NewPanel()
	require.NoError(t, err)
	out := pnl.Render()
	assert.Contains(t, out, "Business Information")
	assert.Contains(t, out, "1 Business Info")
	assert.Contains(t, out, "pgdown: Next")
	assert.NotContains(t, out, "Previous")

	pnl, _ = run(pnl, next)
	pnl, _ = run(pnl, next)
	out = pnl.Render()
	assert.Contains(t, out, "✓ Business Info")
	assert.Contains(t, out, "✓ Expertise")
	assert.Contains(t, out, "ctrl+s: Submit Application")
	assert.Contains(t, out, "(none)")
	assert.NotContains(t, out, "pgdown: Next")
}
