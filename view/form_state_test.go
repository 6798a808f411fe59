package view

import (
	"testing"
	"time"

	"taikin/taikin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormState_BreakEditingIsImmutable(t *testing.T) {
	s0 := FormState{}.WithLogin("09:00").AddBreak()
	s1 := s0.WithBreakStart(0, "12:00").WithBreakEnd(0, "12:30")

	assert.Equal(t, taikin.Break{}, s0.Breaks[0])
	assert.Equal(t, taikin.Break{Start: "12:00", End: "12:30"}, s1.Breaks[0])

	s2 := s1.AddBreak().RemoveBreak(0)
	require.Len(t, s2.Breaks, 1)
	assert.Equal(t, taikin.Break{}, s2.Breaks[0])
	require.Len(t, s1.Breaks, 1)
	assert.Equal(t, "12:00", s1.Breaks[0].Start)
}

func TestFormState_OutOfRangeIndex(t *testing.T) {
	s := FormState{}.AddBreak()
	assert.Equal(t, s, s.RemoveBreak(3))
	assert.Equal(t, s, s.RemoveBreak(-1))
	assert.Equal(t, s, s.WithBreakStart(1, "10:00"))
	assert.Equal(t, s, s.WithBreakEnd(-1, "10:00"))
}

func TestFormState_CalculateSuccess(t *testing.T) {
	s := FormState{}.WithLogin("09:00").AddBreak().WithBreakStart(0, "12:00").WithBreakEnd(0, "12:30")
	got, r := s.Calculate(taikin.NewCalculator(taikin.DefaultWorkDuration))
	require.True(t, r.OK)
	assert.Equal(t, "6:00 PM", got.LogoutTime)
	assert.Equal(t, successMessage, got.Notice)
	assert.Equal(t, SeveritySuccess, got.Severity)
	assert.Empty(t, s.LogoutTime)
}

func TestFormState_CalculateFailureKeepsLogoutTime(t *testing.T) {
	calc := taikin.NewCalculator(taikin.DefaultWorkDuration)
	s, _ := FormState{}.WithLogin("09:00").Calculate(calc)
	require.Equal(t, "5:30 PM", s.LogoutTime)

	s, r := s.AddBreak().WithBreakStart(0, "10:00").Calculate(calc)
	assert.False(t, r.OK)
	assert.Equal(t, "5:30 PM", s.LogoutTime)
	assert.Equal(t, Message(taikin.ReasonIncompleteBreak), s.Notice)
	assert.Equal(t, SeverityError, s.Severity)

	s = s.DismissNotice()
	assert.Empty(t, s.Notice)
	assert.Empty(t, s.Severity)
}

func TestFormState_CalculateUsesWorkDuration(t *testing.T) {
	s, _ := FormState{}.WithLogin("09:00").Calculate(taikin.NewCalculator(8 * time.Hour))
	assert.Equal(t, "5:00 PM", s.LogoutTime)
}

func TestMessage_EveryReason(t *testing.T) {
	reasons := []taikin.Reason{taikin.ReasonMissingLogin, taikin.ReasonIncompleteBreak, taikin.ReasonInvalidBreakOrder}
	seen := map[string]bool{}
	for _, r := range reasons {
		m := Message(r)
		assert.NotEqual(t, string(r), m)
		assert.False(t, seen[m], "duplicate message for %s", r)
		seen[m] = true
	}
}
