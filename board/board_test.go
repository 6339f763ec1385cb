package board_test

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furrow/board"
	"furrow/board/piece"
)

func grid(t *testing.T) board.Board {
	t.Helper()

	files := []board.File{board.NewFile("", 3), board.NewFile("Name", 10), board.NewFile("Value", 10)}
	ranks := []board.Rank{
		board.NewRank([]board.Piece{piece.NewCheckbox(false), piece.NewLabel("one"), piece.NewTextInput("a", 10)}),
		board.NewRank([]board.Piece{piece.NewCheckbox(true), piece.NewLabel("two"), piece.NewTextInput("b", 10)}),
	}

	brd, err := board.New(ranks, files, 0, 2)
	require.NoError(t, err)
	return brd
}

func TestNew(t *testing.T) {

	_, err := board.New(
		[]board.Rank{board.NewRank([]board.Piece{piece.NewLabel("lonely")})},
		[]board.File{board.NewFile("a", 1), board.NewFile("b", 1)},
		0, 0,
	)
	assert.ErrorContains(t, err, "rank 0 has 1 pieces for 2 files")

	brd, err := board.New(nil, nil, 3, 3)
	require.NoError(t, err)
	assert.Nil(t, brd.Piece())

	rank, file := grid(t).Position()
	assert.Equal(t, 0, rank)
	assert.Equal(t, 2, file)
}

func TestNavigate(t *testing.T) {

	brd := grid(t)

	brd, _ = brd.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	brd, _ = brd.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	rank, _ := brd.Position()
	assert.Equal(t, 1, rank)

	brd, _ = brd.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, file := brd.Position()
	assert.Equal(t, 2, file, "tab stops at the last file")

	brd, _ = brd.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	brd = brd.MoveLeft().MoveLeft().MoveUp().MoveUp()
	rank, file = brd.Position()
	assert.Equal(t, 0, rank)
	assert.Equal(t, 0, file)
}

func TestUpdatePiece(t *testing.T) {

	before := grid(t)

	after, cmd := before.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(*piece.ValueChangedMsg)
	require.True(t, ok)
	assert.Equal(t, piece.ValueChangedMsg{Rank: 0, File: 2, Value: "az"}, *msg)

	assert.Equal(t, "az", after.Pieces(0)[2].Render())
	assert.Equal(t, "a", before.Pieces(0)[2].Render(), "earlier boards are unaffected")
	assert.Nil(t, before.Pieces(5))
}

func TestNoCmd(t *testing.T) {

	brd := grid(t).MoveLeft()

	_, cmd := brd.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})
	assert.Nil(t, cmd, "labels ignore keys")
}

func TestReplace(t *testing.T) {

	brd := grid(t).MoveDown()

	replaced, err := brd.Replace([]board.Rank{
		board.NewRank([]board.Piece{piece.NewCheckbox(false), piece.NewLabel("only"), piece.NewTextInput("", 10)}),
	})
	require.NoError(t, err)

	rank, file := replaced.Position()
	assert.Equal(t, 0, rank, "focus clamps to remaining ranks")
	assert.Equal(t, 2, file)

	_, err = brd.Replace([]board.Rank{board.NewRank(nil)})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {

	out := grid(t).Render()

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "two")

	unnamed, err := board.New(
		[]board.Rank{board.NewRank([]board.Piece{piece.NewLabel("solo")})},
		[]board.File{board.NewFile("", 6)},
		0, 0,
	)
	require.NoError(t, err)
	assert.NotContains(t, unnamed.Render(), "\n", "no heading line without file names")
}
