package taikin

// Break is a break interval as entered, before parsing.
type Break struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BreakInterval struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

func (b BreakInterval) Minutes() int {
	return b.End.Minutes() - b.Start.Minutes()
}
