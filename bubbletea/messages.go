package bubbletea

import "github.com/fwojciec/quotefinder"

// EventMsg carries a workflow event into Update. Completed operations
// arrive this way.
type EventMsg struct {
	Event quotefinder.Event
}

// SpinnerTickMsg advances the busy indicator.
type SpinnerTickMsg struct{}
