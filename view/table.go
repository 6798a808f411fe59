package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"taikin/taikin"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderResult writes a successful calculation as a table, or returns the
// failure message as an error.
func RenderResult(w io.Writer, r taikin.Result) error {
	if !r.OK || r.Session == nil {
		return errors.New(Message(r.Reason))
	}
	buildResultTable(w, r).Render()
	return nil
}

func RenderJSON(w io.Writer, r taikin.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(r)
}

func buildResultTable(w io.Writer, r taikin.Result) table.Writer {
	s := r.Session
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"", "開始", "終了", "時間"})

	t.AppendRow(table.Row{"出勤", s.Login.String(), "", ""})
	for i, b := range s.Breaks {
		t.AppendRow(table.Row{
			fmt.Sprintf("休憩%d", i+1),
			b.Start.String(),
			b.End.String(),
			durationToString(time.Duration(b.Minutes()) * time.Minute),
		})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"休憩時間", "", "", durationToString(r.TotalBreak)})
	t.AppendRow(table.Row{"労働時間", "", "", durationToString(s.WorkDuration)})
	t.AppendFooter(table.Row{"退勤時刻", "", "", r.Formatted})
	t.SetStyle(table.StyleRounded)
	return t
}

func durationToString(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
