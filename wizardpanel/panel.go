// Package wizardpanel shows the business upgrade form one step at a time.
package wizardpanel

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	"furrow/board"
	"furrow/board/piece"
	"furrow/message"
	"furrow/style"
	"furrow/wizard"
)

// Steps are the upgrade form's steps, in order.
var Steps = []string{"Business Info", "Expertise", "Confirmation"}

const (
	stepBusiness = iota
	stepExpertise
	stepConfirm
)

// Business info ranks
const (
	rankType = iota
	rankRegistration
	rankCompany
	rankOwner
)

const submitLabel = "Submit Application"

// Panel steps through the upgrade form
type Panel struct {
	wizard wizard.Wizard
	forms  []board.Board
	app    Application

	width  int
	height int
}

func NewPanel() (pnl Panel, err error) {

	pnl = Panel{
		wizard: wizard.New(Steps...),
		app:    Application{BusinessType: Individual},
	}

	builders := []func(Application) (board.Board, error){businessForm, expertiseForm, confirmForm}
	for i, build := range builders {
		var form board.Board
		form, err = build(pnl.app)
		if err != nil {
			err = errors.Wrapf(err, "failed to build %s step", Steps[i])
			return
		}
		pnl.forms = append(pnl.forms, form)
	}
	return
}

// Wizard returns the step state.
func (pnl Panel) Wizard() wizard.Wizard {
	return pnl.wizard
}

// Application returns what has been entered so far.
func (pnl Panel) Application() Application {
	app := pnl.app
	app.Expertise = slices.Clone(app.Expertise)
	return app
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		return pnl, nil

	case *piece.OperatorChangedMsg:
		if pnl.wizard.Current() == stepBusiness && msg.Rank == rankType {
			pnl.app.BusinessType = msg.Selected
		}
		return pnl, nil

	case *piece.ValueChangedMsg:
		if pnl.wizard.Current() != stepBusiness {
			return pnl, nil
		}
		switch msg.Rank {
		case rankRegistration:
			pnl.app.RegistrationNumber = msg.Value
		case rankCompany:
			pnl.app.CompanyName = msg.Value
		case rankOwner:
			pnl.app.Owner = msg.Value
		}
		return pnl, nil

	case *piece.CheckedMsg:
		if pnl.wizard.Current() == stepExpertise && msg.Rank >= 0 && msg.Rank < len(Expertise) {
			pnl.app.Expertise = toggle(pnl.app.Expertise, Expertise[msg.Rank], msg.Checked)
		}
		return pnl, nil

	case *piece.PressedMsg:
		if msg.Label == submitLabel {
			return pnl.submit()
		}
		return pnl, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgdown", "ctrl+n":
			pnl.wizard = pnl.wizard.Advance()
			return pnl, nil
		case "pgup", "ctrl+b":
			pnl.wizard = pnl.wizard.Retreat()
			return pnl, nil
		case "ctrl+s":
			return pnl.submit()
		}

		step := pnl.wizard.Current()
		var cmd tea.Cmd
		pnl.forms = slices.Clone(pnl.forms)
		pnl.forms[step], cmd = pnl.forms[step].Update(msg)
		return pnl, cmd
	}

	return pnl, nil
}

// Render draws the step indicator, the current step and the button hints.
func (pnl Panel) Render() string {

	var body string
	switch pnl.wizard.Current() {
	case stepBusiness:
		body = fmt.Sprintf("%s\n%s\n\n%s",
			style.TitleStyle.Render("Business Information"),
			style.MutedStyle.Render("Please provide your business registration details."),
			pnl.forms[stepBusiness].Render())
	case stepExpertise:
		body = fmt.Sprintf("%s\n%s\n\n%s",
			style.TitleStyle.Render("Expertise"),
			style.MutedStyle.Render("Select the work you are qualified for."),
			pnl.forms[stepExpertise].Render())
	case stepConfirm:
		body = fmt.Sprintf("%s\n\n%s\n\n%s",
			style.TitleStyle.Render("Confirmation"),
			pnl.summary(),
			pnl.forms[stepConfirm].Render())
	}

	return strings.Join([]string{
		pnl.indicator(),
		style.DialogStyle.Render(body),
		pnl.hints(),
	}, "\n\n")
}

func (pnl Panel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// unexported

func (pnl Panel) submit() (Panel, tea.Cmd) {

	if !pnl.wizard.CanSubmit() {
		return pnl, nil
	}

	app := pnl.Application()
	err := app.Validate()
	if err != nil {
		return pnl, message.ErrorCmd(err)
	}

	return pnl, func() tea.Msg {
		return SubmittedMsg{Application: app}
	}
}

func (pnl Panel) indicator() string {

	var parts []string
	for i, step := range pnl.wizard.Steps() {
		var text string
		switch pnl.wizard.Status(i) {
		case wizard.Done:
			text = style.StepDoneStyle.Render("✓ " + step)
		case wizard.Current:
			text = style.StepCurrentStyle.Render(fmt.Sprintf("%d %s", i+1, step))
		default:
			text = style.StepPendingStyle.Render(fmt.Sprintf("%d %s", i+1, step))
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, style.StepPendingStyle.Render("  ›  "))
}

func (pnl Panel) hints() string {

	var hints []string
	if !pnl.wizard.First() {
		hints = append(hints, "pgup: Previous")
	}
	if !pnl.wizard.Last() {
		hints = append(hints, "pgdown: Next")
	}
	if pnl.wizard.CanSubmit() {
		hints = append(hints, "ctrl+s: "+submitLabel)
	}
	hints = append(hints, "esc: back")
	return style.MutedStyle.Render(strings.Join(hints, "  "))
}

func (pnl Panel) summary() string {

	expertise := strings.Join(pnl.app.Expertise, ", ")
	if expertise == "" {
		expertise = "(none)"
	}

	lines := []string{
		fmt.Sprintf("%-22s %s", "Business Type", pnl.app.BusinessType),
		fmt.Sprintf("%-22s %s", "Registration Number", pnl.app.RegistrationNumber),
		fmt.Sprintf("%-22s %s", "Company Name", pnl.app.CompanyName),
		fmt.Sprintf("%-22s %s", "CEO/Owner Name", pnl.app.Owner),
		fmt.Sprintf("%-22s %s", "Expertise", expertise),
	}
	return strings.Join(lines, "\n")
}

func businessForm(app Application) (board.Board, error) {

	files := []board.File{board.NewFile("", 22), board.NewFile("", 32)}
	ranks := []board.Rank{
		board.NewRank([]board.Piece{piece.NewLabel("Business Type"), piece.NewOperator([]string{Individual, Corporation}, 0)}),
		board.NewRank([]board.Piece{piece.NewLabel("Registration Number"), piece.NewTextInput(app.RegistrationNumber, 12)}),
		board.NewRank([]board.Piece{piece.NewLabel("Company Name"), piece.NewTextInput(app.CompanyName, 32)}),
		board.NewRank([]board.Piece{piece.NewLabel("CEO/Owner Name"), piece.NewTextInput(app.Owner, 32)}),
	}

	return board.New(ranks, files, 0, 1)
}

func expertiseForm(app Application) (board.Board, error) {

	files := []board.File{board.NewFile("", 3), board.NewFile("", 24)}
	var ranks []board.Rank
	for _, skill := range Expertise {
		ranks = append(ranks, board.NewRank([]board.Piece{
			piece.NewCheckbox(slices.Contains(app.Expertise, skill)),
			piece.NewLabel(skill),
		}))
	}

	return board.New(ranks, files, 0, 0)
}

func confirmForm(_ Application) (board.Board, error) {

	files := []board.File{board.NewFile("", len(submitLabel)+2)}
	ranks := []board.Rank{board.NewRank([]board.Piece{piece.NewButton(submitLabel, "enter")})}

	return board.New(ranks, files, 0, 0)
}

func toggle(skills []string, skill string, on bool) []string {

	out := slices.DeleteFunc(slices.Clone(skills), func(s string) bool { return s == skill })
	if on {
		out = append(out, skill)
	}
	return out
}
