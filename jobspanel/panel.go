// Package jobspanel lists the visible jobs as a table.
package jobspanel

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	nt "furrow/entity"
	"furrow/style"
)

const (
	headerHeight = 2
	facetHeight  = 1
	maxFacets    = 6

	// NoJobs is shown when nothing matches the filters.
	NoJobs = "No jobs found that match your search."
)

// Panel handles the job table display and navigation state
type Panel struct {
	Selected int // Absolute position of selected job
	Offset   int // First job shown

	Width  int
	Height int

	columns []nt.Column
	jobs    []nt.Job
	field   string
	facets  []nt.ValueCount
}

func NewPanel(columns []nt.Column) Panel {
	return Panel{columns: columns}
}

// Jobs returns the jobs currently listed.
func (pnl Panel) Jobs() []nt.Job {
	return pnl.jobs
}

// Job returns the selected job.
func (pnl Panel) Job() (job nt.Job, ok bool) {
	if pnl.Selected < 0 || pnl.Selected >= len(pnl.jobs) {
		return
	}
	return pnl.jobs[pnl.Selected], true
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case JobsMsg:
		pnl.jobs = msg.Jobs
		pnl.field = msg.Field
		pnl.facets = msg.Facets
		pnl.Selected = 0
		pnl.Offset = 0

	case SizeMsg:
		pnl.Width = msg.Width
		pnl.Height = msg.Height
		pnl = pnl.scroll()

	case tea.KeyPressMsg:

		total := len(pnl.jobs)
		pageSize := pnl.pageSize()

		switch msg.String() {
		case "up", "k":
			if pnl.Selected > 0 {
				pnl.Selected--
			}

		case "down", "j":
			if pnl.Selected < total-1 {
				pnl.Selected++
			}

		case "pgup", "ctrl+u":
			pnl.Selected = max(0, pnl.Selected-pageSize)

		case "pgdown", "ctrl+d":
			pnl.Selected = max(0, min(total-1, pnl.Selected+pageSize))

		case "home", "g":
			pnl.Selected = 0

		case "end", "G":
			pnl.Selected = max(0, total-1)
		}

		pnl = pnl.scroll()
	}

	return pnl, nil
}

// Render draws the facet summary and the visible page of jobs.
func (pnl Panel) Render() string {

	summary := pnl.summary()
	if len(pnl.jobs) == 0 {
		return summary + "\n\n" + style.MutedStyle.Render(NoJobs)
	}

	selected := pnl.Selected - pnl.Offset

	tbl := table.New()
	style.StyleTable(tbl)
	tbl.StyleFunc(style.RowStyler(selected))

	var headers []string
	for _, col := range pnl.columns {
		if col.Hidden {
			continue
		}
		headers = append(headers, fmt.Sprintf("%-*s", col.Width+1, col.Heading()))
	}
	tbl.Headers(headers...)

	end := min(len(pnl.jobs), pnl.Offset+pnl.pageSize())
	for _, job := range pnl.jobs[pnl.Offset:end] {
		var row []string
		for _, col := range pnl.columns {
			if col.Hidden {
				continue
			}
			row = append(row, truncate(Format(job, col.Field), col.Width))
		}
		tbl.Row(row...)
	}

	return summary + "\n" + tbl.Render()
}

// Format renders a job field for display.
func Format(job nt.Job, field string) string {

	value, ok := job.Field(field)
	if !ok {
		return ""
	}

	switch field {
	case nt.FieldUrgent:
		urgent, _ := value.Bool()
		if urgent {
			return "URGENT"
		}
		return ""
	case nt.FieldDistance:
		return value.String() + "km"
	case nt.FieldPrice:
		return strings.TrimSpace(job.Price + " " + job.PriceType)
	}
	return value.String()
}

// unexported

// pageSize returns the number of rows that fit on screen
func (pnl Panel) pageSize() int {
	size := pnl.Height - headerHeight - facetHeight
	if size < 1 {
		// unsized panels show everything
		return max(1, len(pnl.jobs))
	}
	return size
}

// scroll adjusts Offset to keep Selected visible
func (pnl Panel) scroll() Panel {

	pageSize := pnl.pageSize()
	if pnl.Selected < pnl.Offset {
		pnl.Offset = pnl.Selected
	} else if pnl.Selected >= pnl.Offset+pageSize {
		pnl.Offset = pnl.Selected - pageSize + 1
	}
	return pnl
}

func (pnl Panel) summary() string {

	text := fmt.Sprintf("%d jobs", len(pnl.jobs))
	if pnl.field == "" || len(pnl.facets) == 0 {
		return style.TitleStyle.Render(text)
	}

	var counts []string
	for i, vc := range pnl.facets {
		if i == maxFacets {
			counts = append(counts, "…")
			break
		}
		counts = append(counts, fmt.Sprintf("%s (%d)", vc.Value, vc.Count))
	}

	return style.TitleStyle.Render(text) + "  " +
		style.MutedStyle.Render(pnl.field+": "+strings.Join(counts, ", "))
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + style.MutedStyle.Render("…")
}
