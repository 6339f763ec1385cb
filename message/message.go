package message

import nt "furrow/entity"

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// SetFilterMsg carries a freshly built filter set to apply
type SetFilterMsg struct {
	Set nt.Set
}

// StatusMsg is a transient note for the footer
type StatusMsg struct {
	Text string
}
