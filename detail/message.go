package detail

import nt "furrow/entity"

type SizeMsg struct {
	Width  int
	Height int
}

// JobMsg selects the job to show
type JobMsg struct {
	Job nt.Job
}
