// Package wizard tracks position within a fixed sequence of form steps.
package wizard

// Status is how a step relates to the current one.
type Status int

const (
	Pending Status = iota
	Current
	Done
)

func (status Status) String() string {
	switch status {
	case Current:
		return "current"
	case Done:
		return "done"
	}
	return "pending"
}

// Wizard is a bounded step counter.
// Advance stops at the last step and Retreat at the first; finishing is up to the caller.
type Wizard struct {
	steps   []string
	current int
}

// New creates a wizard positioned on the first of steps.
func New(steps ...string) Wizard {
	return Wizard{steps: steps}
}

// Advance moves to the next step, unless on the last.
func (wzd Wizard) Advance() Wizard {
	if wzd.current < len(wzd.steps)-1 {
		wzd.current++
	}
	return wzd
}

// Retreat moves to the previous step, unless on the first.
func (wzd Wizard) Retreat() Wizard {
	if wzd.current > 0 {
		wzd.current--
	}
	return wzd
}

// Current returns the index of the current step.
func (wzd Wizard) Current() int {
	return wzd.current
}

// Step returns the name of the current step, or "" when there are none.
func (wzd Wizard) Step() string {
	if len(wzd.steps) == 0 {
		return ""
	}
	return wzd.steps[wzd.current]
}

// Steps returns the step names.
func (wzd Wizard) Steps() []string {
	return append([]string{}, wzd.steps...)
}

// Len returns the number of steps.
func (wzd Wizard) Len() int {
	return len(wzd.steps)
}

// First reports whether the wizard is on its first step.
func (wzd Wizard) First() bool {
	return wzd.current == 0
}

// Last reports whether the wizard is on its last step.
func (wzd Wizard) Last() bool {
	return wzd.current >= len(wzd.steps)-1
}

// CanSubmit reports whether the caller may offer submit, only so on the last step.
func (wzd Wizard) CanSubmit() bool {
	return len(wzd.steps) > 0 && wzd.Last()
}

// Status returns the status of step idx for a step indicator.
func (wzd Wizard) Status(idx int) Status {
	switch {
	case idx < wzd.current:
		return Done
	case idx == wzd.current:
		return Current
	}
	return Pending
}
