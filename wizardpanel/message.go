package wizardpanel

// SubmittedMsg is sent when the application is submitted from the last step
type SubmittedMsg struct {
	Application Application
}

// SizeMsg tells the panel its display size
type SizeMsg struct {
	Width  int
	Height int
}
