package filter

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"furrow/board"
	"furrow/board/piece"
	nt "furrow/entity"
	"furrow/message"
	"furrow/style"
)

const (
	dialogWidth = 64
	fileValue   = 3 // focus starts on the value input
)

// Panel displays a modal dialog for editing filter rows
type Panel struct {
	board board.Board
	rows  []Row

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// opStrings for Operator piece, in nt.Ops order
var opStrings = opNames()

func NewPanel(ctx context.Context, rows []Row, lgr nt.Logger) (pnl Panel, err error) {

	pnl = Panel{
		rows:   append([]Row{}, rows...),
		ctx:    ctx,
		logger: lgr,
	}
	pnl.board, err = pnl.buildBoard()
	return
}

// Rows returns a copy of the current rows.
func (pnl Panel) Rows() []Row {
	return append([]Row{}, pnl.rows...)
}

// Set builds a filter set from the enabled rows.
func (pnl Panel) Set() nt.Set {
	return Set(pnl.rows)
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.board, _ = pnl.board.Update(board.SizeMsg{Width: msg.Width, Height: msg.Height})
		return pnl, nil

	case *piece.CheckedMsg:
		if pnl.valid(msg.Rank) {
			pnl.rows = pnl.Rows()
			pnl.rows[msg.Rank].Enabled = msg.Checked
		}
		return pnl, nil

	case *piece.OperatorChangedMsg:
		if pnl.valid(msg.Rank) && msg.Index >= 0 && msg.Index < len(nt.Ops) {
			pnl.rows = pnl.Rows()
			pnl.rows[msg.Rank].Op = nt.Ops[msg.Index]
		}
		return pnl, nil

	case *piece.ValueChangedMsg:
		if pnl.valid(msg.Rank) {
			pnl.rows = pnl.Rows()
			pnl.rows[msg.Rank].Value = msg.Value
		}
		return pnl, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			set := pnl.Set()
			pnl.logger.Info(pnl.ctx, "applying filters", "count", len(set))
			return pnl, message.SetFilterCmd(set)
		}
		var cmd tea.Cmd
		pnl.board, cmd = pnl.board.Update(msg)
		return pnl, cmd
	}

	return pnl, nil
}

// Render draws the dialog content.
func (pnl Panel) Render() string {

	helpText := "tab: next  ↑↓: row  t: toggle  ←→: change op  enter: apply  esc: cancel"

	content := fmt.Sprintf("%s\n%s\n\n%s",
		style.TitleStyle.Render("Filters"),
		pnl.board.Render(),
		style.MutedStyle.Render(helpText))

	return style.DialogStyle.Width(dialogWidth).Render(content)
}

// Offset returns where the dialog sits to be centred in the panel.
func (pnl Panel) Offset() (x, y int) {

	if pnl.width <= 0 || pnl.height <= 0 {
		return 0, 0
	}

	dialogHeight := strings.Count(pnl.Render(), "\n") + 1
	x = max(0, (pnl.width-dialogWidth)/2)
	y = max(0, (pnl.height-dialogHeight)/2)
	return
}

func (pnl Panel) View() tea.View {

	x, y := pnl.Offset()
	dialogLayer := lipgloss.NewLayer("filter", pnl.Render()).
		X(x).
		Y(y)

	return tea.NewView(dialogLayer)
}

// unexported

func (pnl Panel) valid(rank int) bool {
	return rank >= 0 && rank < len(pnl.rows)
}

func (pnl Panel) buildBoard() (brd board.Board, err error) {

	files := []board.File{
		board.NewFile("", 3),       // checkbox
		board.NewFile("Field", 18), // field name
		board.NewFile("Op", 9),     // operator
		board.NewFile("Value", 24), // value
	}

	if len(pnl.rows) == 0 {
		brd, err = board.New(
			[]board.Rank{board.NewRank([]board.Piece{
				piece.NewLabel(""), piece.NewLabel("(no filters)"), piece.NewLabel(""), piece.NewLabel(""),
			})},
			files, 0, 0,
		)
		err = errors.Wrapf(err, "failed to build empty filter board")
		return
	}

	var ranks []board.Rank
	for _, row := range pnl.rows {
		opIndex := 0
		for i, op := range nt.Ops {
			if op == row.Op {
				opIndex = i
				break
			}
		}

		ranks = append(ranks, board.NewRank([]board.Piece{
			piece.NewCheckbox(row.Enabled),
			piece.NewLabel(row.Label()),
			piece.NewOperator(opStrings, opIndex),
			piece.NewTextInput(row.Value, 50),
		}))
	}

	brd, err = board.New(ranks, files, 0, fileValue)
	err = errors.Wrapf(err, "failed to build filter board for %d rows", len(pnl.rows))
	return
}

func opNames() []string {
	names := make([]string, len(nt.Ops))
	for i, op := range nt.Ops {
		names[i] = op.String()
	}
	return names
}
