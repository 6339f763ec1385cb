package furrow

import (
	tea "charm.land/bubbletea/v2"

	nt "furrow/entity"
	"furrow/jobspanel"
	"furrow/message"
)

// layoutMsg carries a reloaded layout
type layoutMsg struct {
	layout *Layout
}

// query runs set against the store, counting the layout's facet field
// results are stamped with querySeq so that only the latest is shown
func (m Model) query(set nt.Set) tea.Cmd {

	ctx, store, field, seq := m.ctx, m.Store, m.Layout.Facet, m.querySeq

	return func() tea.Msg {

		jobs, err := store.Query(ctx, set)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		msg := jobspanel.JobsMsg{Seq: seq, Jobs: jobs}
		if field == "" {
			return msg
		}

		facets, err := store.Facets(ctx, set, field)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		msg.Field = field
		msg.Facets = facets
		return msg
	}
}

// reloadLayout reads the layout file again
func (m Model) reloadLayout() tea.Cmd {

	if m.LayoutPath == "" {
		return func() tea.Msg {
			return message.StatusMsg{Text: "no layout file to reload"}
		}
	}

	path := m.LayoutPath
	return func() tea.Msg {
		layout, err := LoadLayout(path)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return layoutMsg{layout: layout}
	}
}
