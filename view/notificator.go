package view

import (
	"bytes"
	"errors"
	"os/exec"
)

type Notificator interface {
	Notify(title, message string) error
}

type MacNotificator struct{}

func (no *MacNotificator) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("osascript", "-e", `display notification "`+message+`" with title "taikin" subtitle "`+title+`" sound name "Blow"`)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return errors.New(errOut.String())
	}
	return nil
}

type nopNotificator struct{}

func (nopNotificator) Notify(string, string) error { return nil }

func NewNotificator(enabled bool) Notificator {
	if enabled {
		return &MacNotificator{}
	}
	return nopNotificator{}
}
