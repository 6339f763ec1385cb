package filter

import (
	"bytes"
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furrow/board/piece"
	nt "furrow/entity"
	"furrow/facet"
	"furrow/message"
	"furrow/mock"
)

func rows() []Row {
	return []Row{
		{Fields: []string{nt.FieldTitle, nt.FieldDescription}, Op: nt.TextContainsOp, Value: "", Enabled: true},
		{Field: nt.FieldCategory, Op: nt.EqualsOrWildcardOp, Value: nt.Any, Enabled: true},
		{Field: nt.FieldDistance, Op: nt.NumericAtMostOp, Value: nt.Any, Enabled: true},
		{Field: nt.FieldUrgent, Op: nt.EqualsOrWildcardOp, Value: "true", Enabled: false},
	}
}

func newPanel(t *testing.T) Panel {
	t.Helper()

	pnl, err := NewPanel(context.Background(), rows(), &sabot.Sabot{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	return pnl
}

func ids(jobs []nt.Job) []string {
	out := []string{}
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}

func TestRowFilter(t *testing.T) {

	t.Run("search over fields", func(t *testing.T) {
		f := Row{Fields: []string{"title", "description"}, Op: nt.TextContainsOp, Value: "apple"}.Filter()
		assert.Equal(t, nt.Search("apple", "title", "description"), f)
	})

	t.Run("equality coerces bools", func(t *testing.T) {
		f := Row{Field: "urgent", Op: nt.EqualsOrWildcardOp, Value: "true"}.Filter()
		assert.Equal(t, true, f.Value)
	})

	t.Run("text keeps strings", func(t *testing.T) {
		f := Row{Field: "title", Op: nt.TextContainsOp, Value: "true"}.Filter()
		assert.Equal(t, "true", f.Value)
	})

	t.Run("label", func(t *testing.T) {
		assert.Equal(t, "title|description", Row{Fields: []string{"title", "description"}}.Label())
		assert.Equal(t, "category", Row{Field: "category"}.Label())
	})
}

func TestSetSkipsDisabled(t *testing.T) {

	set := Set(rows())
	require.Len(t, set, 3)
	assert.Equal(t, nt.Or, set[0].Op)
	assert.Len(t, set.Without(nt.FieldUrgent), 3)
}

func TestControls(t *testing.T) {

	jobs := mock.Sample()

	cases := []struct {
		name   string
		ctl    Controls
		expect []string
	}{
		{"defaults show everything", Controls{}, []string{"1", "2", "3", "4"}},
		{"search", Controls{Search: "Apple"}, []string{"4"}},
		{"category", Controls{Category: "Livestock"}, []string{"3"}},
		{"explicit any", Controls{Category: nt.Any, Distance: nt.Any}, []string{"1", "2", "3", "4"}},
		{"distance", Controls{Distance: "5"}, []string{"1", "2"}},
		{"distance and search", Controls{Distance: "25", Search: "farm"}, []string{"2"}},
		{"tag", Controls{Tag: "Weekend"}, []string{"4"}},
		{"nothing", Controls{Search: "tractor"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ids(facet.Apply(jobs, tc.ctl.Set())))
		})
	}
}

func TestPanelEdits(t *testing.T) {

	pnl := newPanel(t)

	pnl, _ = pnl.Update(&piece.ValueChangedMsg{Rank: 0, Value: "rice"})
	pnl, _ = pnl.Update(&piece.CheckedMsg{Rank: 3, Checked: true})
	pnl, _ = pnl.Update(&piece.OperatorChangedMsg{Rank: 2, Index: 1, Selected: "=="})
	pnl, _ = pnl.Update(&piece.ValueChangedMsg{Rank: 9, Value: "ignored"})

	got := pnl.Rows()
	assert.Equal(t, "rice", got[0].Value)
	assert.True(t, got[3].Enabled)
	assert.Equal(t, nt.EqualsOrWildcardOp, got[2].Op)

	assert.Equal(t, "", rows()[0].Value, "panel must not share rows with caller")
	assert.Len(t, pnl.Set(), 4)
}

func TestPanelApply(t *testing.T) {

	pnl := newPanel(t)
	pnl, _ = pnl.Update(&piece.ValueChangedMsg{Rank: 0, Value: "orchard"})

	_, cmd := pnl.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(message.SetFilterMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"4"}, ids(facet.Apply(mock.Sample(), msg.Set)))
}

func TestPanelTyping(t *testing.T) {

	pnl := newPanel(t)

	// focus starts on the first row's value input
	_, cmd := pnl.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)

	changed, ok := cmd().(*piece.ValueChangedMsg)
	require.True(t, ok)
	assert.Equal(t, 0, changed.Rank)
	assert.Equal(t, fileValue, changed.File)
	assert.Equal(t, "r", changed.Value)
}

func TestPanelRender(t *testing.T) {

	out := newPanel(t).Render()
	assert.Contains(t, out, "title|description")
	assert.Contains(t, out, "contains")
	assert.Contains(t, out, "<=")

	empty, err := NewPanel(context.Background(), nil, &sabot.Sabot{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Contains(t, empty.Render(), "(no filters)")
}

func TestBuildBoard(t *testing.T) {

	pnl := newPanel(t)

	brd, err := pnl.buildBoard()
	require.NoError(t, err)
	for rank := range rows() {
		assert.Len(t, brd.Pieces(rank), 4)
	}
	rank, file := brd.Position()
	assert.Equal(t, 0, rank)
	assert.Equal(t, fileValue, file)

	pnl.rows = nil
	brd, err = pnl.buildBoard()
	require.NoError(t, err)
	assert.Len(t, brd.Pieces(0), 4)
}
