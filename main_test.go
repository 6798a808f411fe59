package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"taikin/taikin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestParseBreakArg(t *testing.T) {
	cases := map[string]taikin.Break{
		"12:00-12:30":    {Start: "12:00", End: "12:30"},
		" 12:00 - 12:30": {Start: "12:00", End: "12:30"},
		"12:00-":         {Start: "12:00", End: ""},
		"-12:30":         {Start: "", End: "12:30"},
		"12:00":          {Start: "12:00", End: ""},
	}
	for in, want := range cases {
		assert.Equal(t, want, parseBreakArg(in), "parse %q", in)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCalc_Table(t *testing.T) {
	var buf bytes.Buffer
	err := calc(&buf, discardLogger(), taikin.NewCalculator(taikin.DefaultWorkDuration), "09:00", []string{"12:00-12:30"}, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "6:00 PM")
}

func TestCalc_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := calc(&buf, discardLogger(), taikin.NewCalculator(8*time.Hour), "09:00", nil, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"logoutTime":"5:00 PM"}`, buf.String())
}

func TestCalc_Failure(t *testing.T) {
	var buf bytes.Buffer
	err := calc(&buf, discardLogger(), taikin.NewCalculator(taikin.DefaultWorkDuration), "09:00", []string{"10:00-"}, true)
	require.Error(t, err)
	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.ExitCode())
	assert.JSONEq(t, `{"ok":false,"reason":"IncompleteBreak"}`, buf.String())

	buf.Reset()
	err = calc(&buf, discardLogger(), taikin.NewCalculator(taikin.DefaultWorkDuration), "", nil, false)
	require.Error(t, err)
	assert.Equal(t, "出勤時刻を入力してください", err.Error())
}
