package view

import "taikin/taikin"

// FormState is everything the form shows. Every operation returns a new
// state and leaves the receiver untouched.
type FormState struct {
	Login      string
	Breaks     []taikin.Break
	LogoutTime string
	Notice     string
	Severity   Severity
}

func (s FormState) WithLogin(v string) FormState {
	s.Login = v
	return s
}

func (s FormState) AddBreak() FormState {
	s.Breaks = append(s.cloneBreaks(), taikin.Break{})
	return s
}

func (s FormState) RemoveBreak(i int) FormState {
	if i < 0 || i >= len(s.Breaks) {
		return s
	}
	bs := s.cloneBreaks()
	s.Breaks = append(bs[:i], bs[i+1:]...)
	return s
}

func (s FormState) WithBreakStart(i int, v string) FormState {
	if i < 0 || i >= len(s.Breaks) {
		return s
	}
	s.Breaks = s.cloneBreaks()
	s.Breaks[i].Start = v
	return s
}

func (s FormState) WithBreakEnd(i int, v string) FormState {
	if i < 0 || i >= len(s.Breaks) {
		return s
	}
	s.Breaks = s.cloneBreaks()
	s.Breaks[i].End = v
	return s
}

// Calculate runs the calculator on the current input. A failed calculation
// keeps the previously shown logout time.
func (s FormState) Calculate(c *taikin.Calculator) (FormState, taikin.Result) {
	r := c.Run(s.Login, s.Breaks)
	if r.OK {
		s.LogoutTime = r.Formatted
	}
	s.Notice, s.Severity = ResultMessage(r)
	return s, r
}

func (s FormState) DismissNotice() FormState {
	s.Notice = ""
	s.Severity = ""
	return s
}

func (s FormState) cloneBreaks() []taikin.Break {
	bs := make([]taikin.Break, len(s.Breaks), len(s.Breaks)+1)
	copy(bs, s.Breaks)
	return bs
}
