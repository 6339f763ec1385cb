// Package board lays out focusable pieces in a grid of ranks (rows) and files (columns).
package board

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	"furrow/style"
)

// Piece is a widget occupying one square.
type Piece interface {
	Update(msg tea.Msg) (Piece, tea.Cmd)
	Render() string
}

// PieceMsg is emitted by pieces; the board stamps it with the square's position.
type PieceMsg interface {
	IsPieceMsg()
	SetPosition(rank, file int)
}

// File is a column heading and width.
type File interface {
	Name() string
	Width() int
}

// Rank is a row of pieces.
type Rank struct {
	pieces []Piece
}

// NewRank creates a rank.
func NewRank(pieces []Piece) Rank {
	return Rank{pieces: pieces}
}

// NewFile creates a plain file.
func NewFile(name string, width int) File {
	return file{name: name, width: width}
}

// SizeMsg tells the board its display size.
type SizeMsg struct {
	Width  int
	Height int
}

// Board represents a 2D grid of pieces with one focused square.
// Board is designed for immutable use in bubbletea/Elm architecture:
// - Navigation and Update return a new Board
// - Ranks are cloned before a piece is replaced, so earlier Boards are unaffected
type Board struct {
	ranks    []Rank
	files    []File
	position position
	width    int
	height   int
}

// New creates a board focused on rank, file.
// Every rank must have one piece per file.
func New(ranks []Rank, files []File, rank, file int) (brd Board, err error) {

	for i, rnk := range ranks {
		if len(rnk.pieces) != len(files) {
			err = errors.Errorf("rank %d has %d pieces for %d files", i, len(rnk.pieces), len(files))
			return
		}
	}

	brd = Board{
		ranks: ranks,
		files: files,
	}
	brd.position = brd.clamp(position{rank: rank, file: file})
	return
}

// Replace swaps in new ranks, keeping focus where possible.
func (brd Board) Replace(ranks []Rank) (Board, error) {

	replaced, err := New(ranks, brd.files, brd.position.rank, brd.position.file)
	if err != nil {
		return brd, err
	}
	replaced.width = brd.width
	replaced.height = brd.height
	return replaced, nil
}

// Position returns the focused rank and file.
func (brd Board) Position() (rank, file int) {
	return brd.position.rank, brd.position.file
}

// Piece returns the focused piece, or nil when the board is empty.
func (brd Board) Piece() Piece {
	if len(brd.ranks) == 0 || len(brd.files) == 0 {
		return nil
	}
	return brd.ranks[brd.position.rank].pieces[brd.position.file]
}

// Pieces returns a copy of the pieces on a rank.
func (brd Board) Pieces(rank int) []Piece {
	if rank < 0 || rank >= len(brd.ranks) {
		return nil
	}
	return slices.Clone(brd.ranks[rank].pieces)
}

func (brd Board) MoveUp() Board {
	if brd.position.rank > 0 {
		brd.position.rank--
	}
	return brd
}

func (brd Board) MoveDown() Board {
	if brd.position.rank < len(brd.ranks)-1 {
		brd.position.rank++
	}
	return brd
}

func (brd Board) MoveLeft() Board {
	if brd.position.file > 0 {
		brd.position.file--
	}
	return brd
}

func (brd Board) MoveRight() Board {
	if brd.position.file < len(brd.files)-1 {
		brd.position.file++
	}
	return brd
}

// Update navigates on up/down/tab/shift+tab and hands other keys to the focused piece.
func (brd Board) Update(msg tea.Msg) (Board, tea.Cmd) {

	switch msg := msg.(type) {
	case SizeMsg:
		brd.width = msg.Width
		brd.height = msg.Height
		return brd, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up":
			return brd.MoveUp(), nil
		case "down":
			return brd.MoveDown(), nil
		case "tab":
			return brd.MoveRight(), nil
		case "shift+tab":
			return brd.MoveLeft(), nil
		}
		return brd.updatePiece(msg)
	}

	return brd, nil
}

// Render draws a heading line when any file is named, then one line per rank.
func (brd Board) Render() string {

	var lines []string

	named := slices.ContainsFunc(brd.files, func(f File) bool { return f.Name() != "" })
	if named {
		cells := make([]string, len(brd.files))
		for i, f := range brd.files {
			cells[i] = fit(f.Name(), f.Width())
		}
		lines = append(lines, style.MutedStyle.Render(strings.Join(cells, " ")))
	}

	for r, rnk := range brd.ranks {
		cells := make([]string, len(brd.files))
		for f, pc := range rnk.pieces {
			cell := fit(pc.Render(), brd.files[f].Width())
			switch {
			case r == brd.position.rank && f == brd.position.file:
				cell = style.HlCellStyle.Render(cell)
			case r == brd.position.rank:
				cell = style.HlRowStyle.Render(cell)
			}
			cells[f] = cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

// View renders the board as a tea.View.
func (brd Board) View() tea.View {
	return tea.NewView(brd.Render())
}

// unexported

type position struct {
	rank int
	file int
}

type file struct {
	name  string
	width int
}

func (f file) Name() string { return f.name }
func (f file) Width() int   { return f.width }

func (brd Board) clamp(pos position) position {
	pos.rank = max(0, min(pos.rank, len(brd.ranks)-1))
	pos.file = max(0, min(pos.file, len(brd.files)-1))
	return pos
}

func (brd Board) updatePiece(msg tea.Msg) (Board, tea.Cmd) {

	pc := brd.Piece()
	if pc == nil {
		return brd, nil
	}

	updated, cmd := pc.Update(msg)

	rank, file := brd.position.rank, brd.position.file
	ranks := slices.Clone(brd.ranks)
	ranks[rank] = Rank{pieces: slices.Clone(ranks[rank].pieces)}
	ranks[rank].pieces[file] = updated
	brd.ranks = ranks

	return brd, positioned(cmd, rank, file)
}

func positioned(cmd tea.Cmd, rank, file int) tea.Cmd {

	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if pm, ok := msg.(PieceMsg); ok {
			pm.SetPosition(rank, file)
		}
		return msg
	}
}

func fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	return fmt.Sprintf("%-*.*s", width, width, text)
}
