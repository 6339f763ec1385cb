package detail

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"furrow/mock"
)

func TestRender(t *testing.T) {

	pnl := NewPanel()
	assert.Contains(t, pnl.Render(), "No job selected.")

	pnl, _ = pnl.Update(JobMsg{Job: mock.Sample()[0]})
	out := pnl.Render()

	assert.Contains(t, out, "Rice Harvesting (Combine Operator)")
	assert.Contains(t, out, "URGENT")
	assert.Contains(t, out, "Wanju-gun")
	assert.Contains(t, out, "- Combine")
}

func TestScroll(t *testing.T) {

	pnl := NewPanel()
	pnl, _ = pnl.Update(SizeMsg{Width: 80, Height: 5})
	pnl, _ = pnl.Update(JobMsg{Job: mock.Sample()[1]})

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for range 50 {
		pnl, _ = pnl.Update(down)
	}
	assert.Equal(t, len(pnl.contentLines)-5, pnl.ScrollOffset)
	assert.Contains(t, pnl.Render(), "status: open")

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, len(pnl.contentLines)-6, pnl.ScrollOffset)

	pnl, _ = pnl.Update(JobMsg{Job: mock.Sample()[2]})
	assert.Equal(t, 0, pnl.ScrollOffset)
}
