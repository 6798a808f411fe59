package view

import "taikin/taikin"

type Severity string

const (
	SeveritySuccess = Severity("success")
	SeverityError   = Severity("error")
)

const successMessage = "退勤時刻を計算しました"

func Message(reason taikin.Reason) string {
	switch reason {
	case taikin.ReasonMissingLogin:
		return "出勤時刻を入力してください"
	case taikin.ReasonIncompleteBreak:
		return "休憩の開始時刻と終了時刻をすべて入力してください"
	case taikin.ReasonInvalidBreakOrder:
		return "休憩終了時刻は休憩開始時刻より後にしてください"
	}
	return string(reason)
}

// ResultMessage returns the notice shown after a calculation.
func ResultMessage(r taikin.Result) (string, Severity) {
	if r.OK {
		return successMessage, SeveritySuccess
	}
	return Message(r.Reason), SeverityError
}
