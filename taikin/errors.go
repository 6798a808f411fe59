package taikin

import "fmt"

type Reason string

const (
	ReasonMissingLogin      = Reason("MissingLogin")
	ReasonIncompleteBreak   = Reason("IncompleteBreak")
	ReasonInvalidBreakOrder = Reason("InvalidBreakOrder")
)

// ValidationError reports the first rule a work session violates.
// Index is the offending break, or -1 when the login time is at fault.
type ValidationError struct {
	Reason Reason
	Index  int
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s", e.Reason, e.Err)
		}
		return string(e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: break %d: %s", e.Reason, e.Index+1, e.Err)
	}
	return fmt.Sprintf("%s: break %d", e.Reason, e.Index+1)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
