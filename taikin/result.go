package taikin

import (
	"errors"
	"time"
)

// Result is either a formatted logout time (OK) or the reason validation failed.
type Result struct {
	OK         bool          `json:"ok"`
	LogoutTime ClockTime     `json:"-"`
	Formatted  string        `json:"logoutTime,omitempty"`
	Reason     Reason        `json:"reason,omitempty"`
	TotalBreak time.Duration `json:"-"`
	Session    *WorkSession  `json:"-"`
	Err        error         `json:"-"`
}

func failure(err error) Result {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return Result{Reason: ve.Reason, Err: err}
	}
	return Result{Reason: ReasonMissingLogin, Err: err}
}
