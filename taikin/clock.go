package taikin

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var ErrInvalidClockTime = errors.New("invalid clock time")

// ClockTime is a time of day in minutes since midnight.
type ClockTime int

func ClockTimeFromMinutes(m int) ClockTime {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return ClockTime(m)
}

// ParseClockTime parses a strict "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) Hour() int {
	return int(c) / 60
}

func (c ClockTime) Minute() int {
	return int(c) % 60
}

func (c ClockTime) Minutes() int {
	return int(c)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) Format12h() string {
	ampm := "AM"
	if c.Hour() >= 12 {
		ampm = "PM"
	}
	h := c.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), ampm)
}
