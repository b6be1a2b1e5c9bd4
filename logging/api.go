package logging

import (
	"github.com/tebeka/atexit"
)

// logger is a global reference to a shared Logger (created/initialized with the
// compiler, but separated for general usage)
var logger = newLogger(LogLevelVerbose)

func init() {
	// a fatal exit should never leave a spinner running
	atexit.Register(func() {
		displayEndPhase(false)
	})
}

// Initialize initializes the global logger with the provided log level.
// Unknown log level names fall back to verbose.
func Initialize(loglevelname string) {
	loglevel, ok := LogLevelFromName(loglevelname)
	if !ok {
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered any
// errors.
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// ErrorCount returns the number of errors logged so far.
func ErrorCount() int {
	return logger.errorCount
}

// WarningCount returns the number of warnings logged so far.
func WarningCount() int {
	return len(logger.warnings)
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs a compilation error (user-induced, bad code)
func LogCompileError(lctx *LogContext, cerr *CompileError) {
	logger.handleMsg(&CompileMessage{Err: cerr, Context: lctx, IsError: true})
}

// LogCompileWarning logs a compilation warning (user-induced, problematic code)
func LogCompileWarning(lctx *LogContext, cerr *CompileError) {
	logger.handleMsg(&CompileMessage{Err: cerr, Context: lctx, IsError: false})
}

// LogConfigError logs an error related to the build profile or command line
func LogConfigError(kind, message string) {
	logger.m.Lock()
	defer logger.m.Unlock()

	logger.errorCount++
	if logger.LogLevel > LogLevelSilent {
		displayEndPhase(false)
		displayConfigError(kind, message)
	}
}

// LogInfo prints an informational message such as the name of a written file.
func LogInfo(tag, msg string) {
	if logger.LogLevel == LogLevelVerbose {
		PrintInfoMessage(tag, msg)
	}
}

// ReportFatal reports a fatal error that was not expected: ie. the compiler did
// something it wasn't supposed to or the host environment failed it.  It exits
// through atexit so registered handlers still run.
func ReportFatal(message string) {
	displayFatalError(message)
	atexit.Exit(1)
}

// LogCompileHeader displays the compiler version and the file being compiled.
func LogCompileHeader(srcPath string) {
	if logger.LogLevel == LogLevelVerbose {
		displayCompileHeader(srcPath)
	}
}

// LogBeginPhase starts the spinner for a compilation phase.
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase stops the current phase spinner.
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(ShouldProceed())
	}
}

// LogCompilationFinished displays any held warnings and the closing message.
func LogCompilationFinished() {
	logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		displayCompilationFinished(ShouldProceed(), logger.errorCount, len(logger.warnings))
	}
}
