// Package detail shows every field of one job.
package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"gopkg.in/yaml.v3"

	nt "furrow/entity"
	"furrow/style"
)

// Panel handles the full job view display state
type Panel struct {
	job          *nt.Job
	contentLines []string // Rendered content split into lines (cached)

	// Display state
	Width        int
	height       int
	ScrollOffset int // Line offset for scrolling content
}

func NewPanel() Panel {
	return Panel{}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case JobMsg:
		job := msg.Job
		pnl.job = &job
		pnl.contentLines = render(job)
		pnl.ScrollOffset = 0

	case SizeMsg:
		pnl.Width = msg.Width
		pnl.height = msg.Height
		pnl.ScrollOffset = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.ScrollOffset > 0 {
				pnl.ScrollOffset--
			}

		case "down", "j":
			// Only scroll when content exceeds viewport
			if pnl.height > 0 && len(pnl.contentLines) > pnl.height {
				maxScroll := len(pnl.contentLines) - pnl.height
				if pnl.ScrollOffset < maxScroll {
					pnl.ScrollOffset++
				}
			}
		}
	}

	return pnl, nil
}

// Render shows the visible portion of the job.
func (pnl Panel) Render() string {
	if pnl.job == nil {
		return style.MutedStyle.Render("No job selected.")
	}

	visibleLines := pnl.contentLines[pnl.ScrollOffset:]
	if pnl.height > 0 && len(visibleLines) > pnl.height {
		visibleLines = visibleLines[:pnl.height]
	}

	return strings.Join(visibleLines, "\n")
}

func (pnl Panel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// unexported

// render lays out the job as a heading and yaml body
func render(job nt.Job) []string {

	heading := style.TitleStyle.Render(job.Title)
	if job.Urgent {
		heading += "  " + style.UrgentStyle.Render("URGENT")
	}

	data, err := yaml.Marshal(job)
	if err != nil {
		return []string{heading, style.ErrorStyle.Render(fmt.Sprintf("failed to render job: %s", err))}
	}

	body := strings.TrimSuffix(string(data), "\n")
	return append([]string{heading, ""}, strings.Split(body, "\n")...)
}
