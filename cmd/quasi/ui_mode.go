package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// uiMode is the --ui flag value; the zero value means auto.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

var _ pflag.Value = (*uiMode)(nil)

func (m uiMode) String() string {
	switch m {
	case uiOn:
		return "on"
	case uiOff:
		return "off"
	}
	return "auto"
}

func (m *uiMode) Set(value string) error {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		*m = uiAuto
	case "on", "true":
		*m = uiOn
	case "off", "false":
		*m = uiOff
	default:
		return fmt.Errorf("expected auto|on|off, got %q", value)
	}
	return nil
}

func (m uiMode) Type() string { return "auto|on|off" }

// enabled resolves auto against whether stdout is a terminal.
func (m uiMode) enabled() bool {
	if m == uiAuto {
		return isTerminal(os.Stdout)
	}
	return m == uiOn
}
