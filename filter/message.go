package filter

// SizeMsg tells the panel its display size
type SizeMsg struct {
	Width  int
	Height int
}
