package jobspanel

import nt "furrow/entity"

// JobsMsg carries a fresh query result
type JobsMsg struct {
	Seq    int // stamp of the query producing it
	Jobs   []nt.Job
	Field  string          // facet field counted
	Facets []nt.ValueCount // counts for Field
}

// SizeMsg tells the panel its display size
type SizeMsg struct {
	Width  int
	Height int
}
