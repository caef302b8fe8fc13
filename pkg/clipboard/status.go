package clipboard

import "time"

// DefaultFeedbackDelay is how long a copy result stays visible.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// Status is the state of the copy button.
type Status int

const (
	Idle Status = iota
	Copied
	Failed
)

// Label returns the button text for s.
func (s Status) Label() string {
	switch s {
	case Copied:
		return "Copied!"
	case Failed:
		return "Copy failed"
	default:
		return "Copy to Clipboard"
	}
}

// StatusOf maps the result of a copy to a Status.
func StatusOf(err error) Status {
	if err != nil {
		return Failed
	}
	return Copied
}
