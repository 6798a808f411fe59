package view

import (
	"fmt"
	"log/slog"
	"time"

	"taikin/taikin"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const noticeTimeout = 6 * time.Second

// FormTUI owns the mutable form state and redraws the form from it on every
// change. State is only touched from the tview event loop.
type FormTUI struct {
	calc        *taikin.Calculator
	notificator Notificator
	logger      *slog.Logger

	state     FormState
	noticeSeq int

	app  *tview.Application
	form *tview.Form
}

func NewFormTUI(calc *taikin.Calculator, notificator Notificator, logger *slog.Logger) *FormTUI {
	return &FormTUI{
		calc:        calc,
		notificator: notificator,
		logger:      logger,
	}
}

func (t *FormTUI) Run() error {
	t.app = tview.NewApplication()
	t.render(0)
	return t.app.Run()
}

func (t *FormTUI) render(focus int) {
	form := tview.NewForm().
		AddInputField("出勤時刻(HH:mm)", t.state.Login, 6, acceptClockInput, func(text string) {
			t.state = t.state.WithLogin(text)
		})
	for i, b := range t.state.Breaks {
		i := i
		form.
			AddInputField(fmt.Sprintf("休憩開始%d(HH:mm)", i+1), b.Start, 6, acceptClockInput, func(text string) {
				t.state = t.state.WithBreakStart(i, text)
			}).
			AddInputField(fmt.Sprintf("休憩終了%d(HH:mm)", i+1), b.End, 6, acceptClockInput, func(text string) {
				t.state = t.state.WithBreakEnd(i, text)
			})
	}

	items := form.GetFormItemCount()
	form.AddButton("休憩を追加", func() {
		t.state = t.state.AddBreak()
		t.render(items + 2)
	})
	for i := range t.state.Breaks {
		i := i
		form.AddButton(fmt.Sprintf("休憩%dを削除", i+1), func() {
			t.state = t.state.RemoveBreak(i)
			t.render(0)
		})
	}
	calcButton := items + 1 + len(t.state.Breaks)
	form.AddButton("退勤時刻を計算", func() {
		t.calculate()
		t.render(calcButton)
	})
	form.AddButton("終了", func() {
		t.app.Stop()
	})
	form.SetCancelFunc(func() {
		t.app.Stop()
	})
	form.SetBorder(true).SetTitle("退勤時刻計算").SetTitleAlign(tview.AlignLeft)
	form.SetFocus(focus)
	t.form = form

	result := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	if t.state.LogoutTime != "" {
		result.SetText(fmt.Sprintf("退勤時刻: %s", t.state.LogoutTime))
	}

	notice := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(t.state.Notice).
		SetTextColor(severityColor(t.state.Severity))

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(result, 1, 0, false).
		AddItem(notice, 1, 0, false)
	t.app.SetRoot(root, true).SetFocus(form)
}

func (t *FormTUI) calculate() {
	var r taikin.Result
	t.state, r = t.state.Calculate(t.calc)
	if r.OK {
		t.logger.Debug("calculated logout time", slog.String("login", t.state.Login), slog.Int("breaks", len(t.state.Breaks)), slog.String("logout", r.Formatted))
		if err := t.notificator.Notify("退勤時刻", r.Formatted); err != nil {
			t.logger.Error("failed to notify", slog.String("err", err.Error()))
		}
	} else {
		t.logger.Debug("validation failed", slog.String("reason", string(r.Reason)), slog.Any("err", r.Err))
	}

	t.noticeSeq++
	seq := t.noticeSeq
	time.AfterFunc(noticeTimeout, func() {
		t.app.QueueUpdateDraw(func() {
			if t.noticeSeq != seq {
				return
			}
			t.state = t.state.DismissNotice()
			t.render(t.focusedIndex())
		})
	})
}

func (t *FormTUI) focusedIndex() int {
	item, button := t.form.GetFocusedItemIndex()
	if button >= 0 {
		return t.form.GetFormItemCount() + button
	}
	if item >= 0 {
		return item
	}
	return 0
}

func acceptClockInput(text string, lastChar rune) bool {
	if len(text) > 5 {
		return false
	}
	return lastChar == ':' || (lastChar >= '0' && lastChar <= '9')
}

func severityColor(s Severity) tcell.Color {
	switch s {
	case SeveritySuccess:
		return tcell.ColorGreen
	case SeverityError:
		return tcell.ColorRed
	}
	return tcell.ColorWhite
}
