package logging

import (
	"sync"
)

// Logger is responsible for counting and displaying the messages produced by
// the compiler as appropriate for its log level.
type Logger struct {
	errorCount int
	LogLevel   int

	// warnings is a list of all warnings to be displayed at the end of
	// compilation
	warnings []*CompileMessage

	// m synchronizes the printing of messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing compilation notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, compiler version and phase progress, closing message (DEFAULT)
)

var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarning,
	"warning": LogLevelWarning,
	"verbose": LogLevelVerbose,
}

// LogLevelFromName converts the user-facing name of a log level into its
// enumerated value.  The boolean is false if the name is unknown.
func LogLevelFromName(name string) (int, bool) {
	level, ok := logLevelNames[name]
	return level, ok
}

func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts the logger to process a message.  Errors are displayed
// immediately; warnings are held until compilation finishes.
func (l *Logger) handleMsg(cm *CompileMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if cm.IsError {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			cm.display()
		}
	} else {
		l.warnings = append(l.warnings, cm)
	}
}

// flushWarnings displays all held warnings if the log level permits it.
func (l *Logger) flushWarnings() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, w := range l.warnings {
			w.display()
		}
	}
}
