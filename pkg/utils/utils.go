package utils

import (
	"github.com/charmbracelet/log"
)

// Logf prints consistent server logs.
func Logf(format string, v ...any) {
	log.Infof("[artdex] "+format, v...)
}

// ErrJSON produces a standard JSON error response.
func ErrJSON(msg string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   msg,
	}
}
