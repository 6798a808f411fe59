package taikin

import (
	"time"
)

const DefaultWorkDuration = 8*time.Hour + 30*time.Minute

type WorkSession struct {
	Login        ClockTime       `json:"login"`
	Breaks       []BreakInterval `json:"breaks"`
	WorkDuration time.Duration   `json:"workDuration"`
}

func (s WorkSession) TotalBreakMinutes() int {
	total := 0
	for _, b := range s.Breaks {
		total += b.Minutes()
	}
	return total
}

// Validate checks the login time and breaks in order and returns the first
// violation as a *ValidationError.
func Validate(login string, breaks []Break) error {
	if login == "" {
		return &ValidationError{Reason: ReasonMissingLogin, Index: -1}
	}
	if _, err := ParseClockTime(login); err != nil {
		return &ValidationError{Reason: ReasonMissingLogin, Index: -1, Err: err}
	}

	for i, b := range breaks {
		if b.Start == "" || b.End == "" {
			return &ValidationError{Reason: ReasonIncompleteBreak, Index: i}
		}
	}

	for i, b := range breaks {
		if _, err := parseBreak(b); err != nil {
			return &ValidationError{Reason: ReasonInvalidBreakOrder, Index: i, Err: err}
		}
	}
	return nil
}

func parseBreak(b Break) (BreakInterval, error) {
	start, err := ParseClockTime(b.Start)
	if err != nil {
		return BreakInterval{}, err
	}
	end, err := ParseClockTime(b.End)
	if err != nil {
		return BreakInterval{}, err
	}
	if end <= start {
		return BreakInterval{}, errBreakOrder{start: start, end: end}
	}
	return BreakInterval{Start: start, End: end}, nil
}

type errBreakOrder struct {
	start, end ClockTime
}

func (e errBreakOrder) Error() string {
	return "end " + e.end.String() + " is not after start " + e.start.String()
}

// ParseSession validates the raw input and returns the parsed work session.
func ParseSession(login string, breaks []Break, workDuration time.Duration) (WorkSession, error) {
	if err := Validate(login, breaks); err != nil {
		return WorkSession{}, err
	}
	l, _ := ParseClockTime(login)
	s := WorkSession{
		Login:        l,
		Breaks:       make([]BreakInterval, 0, len(breaks)),
		WorkDuration: normalizeDuration(workDuration),
	}
	for _, b := range breaks {
		bi, _ := parseBreak(b)
		s.Breaks = append(s.Breaks, bi)
	}
	return s, nil
}

// ComputeLogoutTime adds the work duration and all breaks to the login time.
// The result wraps past midnight; the day rollover is not tracked.
func ComputeLogoutTime(s WorkSession) ClockTime {
	total := int(normalizeDuration(s.WorkDuration)/time.Minute) + s.TotalBreakMinutes()
	return ClockTimeFromMinutes(s.Login.Minutes() + total)
}

func normalizeDuration(d time.Duration) time.Duration {
	d = d.Truncate(time.Minute)
	if d <= 0 {
		return DefaultWorkDuration
	}
	return d
}

type Calculator struct {
	WorkDuration time.Duration
}

func NewCalculator(workDuration time.Duration) *Calculator {
	return &Calculator{WorkDuration: normalizeDuration(workDuration)}
}

func (c *Calculator) Run(login string, breaks []Break) Result {
	s, err := ParseSession(login, breaks, c.WorkDuration)
	if err != nil {
		return failure(err)
	}
	logout := ComputeLogoutTime(s)
	return Result{
		OK:         true,
		LogoutTime: logout,
		Formatted:  logout.Format12h(),
		TotalBreak: time.Duration(s.TotalBreakMinutes()) * time.Minute,
		Session:    &s,
	}
}

// Run calculates the logout time using DefaultWorkDuration.
func Run(login string, breaks []Break) Result {
	return NewCalculator(DefaultWorkDuration).Run(login, breaks)
}
