package game

import "log"

// Log levels
const (
	levelInfo    = "INFO"
	levelWarning = "WARNING"
)

// logf writes one "LEVEL: message" line to the standard logger
func logf(level, format string, args ...any) {
	log.Printf(level+": "+format, args...)
}
