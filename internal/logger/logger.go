package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped logging contract shared by the processing layers.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a config string onto a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZerolog(io.Discard, zerolog.Disabled)
}
