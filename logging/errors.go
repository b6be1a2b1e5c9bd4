package logging

import (
	"errors"
	"fmt"
)

// Enumeration of the kinds of errors the compiler can produce.  Every kind
// but KindInternal is caused by the user's source text.
const (
	KindLexical = iota
	KindSyntax
	KindSemantic
	KindInternal
)

var kindNames = map[int]string{
	KindLexical:  "lexical",
	KindSyntax:   "syntax",
	KindSemantic: "semantic",
	KindInternal: "internal",
}

// CompileError is an error in the source text (or, for KindInternal, a broken
// compiler invariant).  It always terminates compilation: errors are never
// accumulated or recovered from.
type CompileError struct {
	// Kind must be one of the enumerated error kinds.
	Kind int

	// Message is the descriptive text of the error without position info.
	Message string

	// Position may be nil if the error is not attached to any source text.
	Position *TextPosition
}

func (ce *CompileError) Error() string {
	if ce.Position == nil {
		return fmt.Sprintf("%s error: %s", kindNames[ce.Kind], ce.Message)
	}

	return fmt.Sprintf(
		"%s error at line %d, column %d: %s",
		kindNames[ce.Kind],
		ce.Position.StartLn,
		ce.Position.StartCol,
		ce.Message,
	)
}

// KindName returns the display name of the error's kind.
func (ce *CompileError) KindName() string {
	return kindNames[ce.Kind]
}

// Raise creates a new compile error.  The message is formatted with args.
func Raise(kind int, pos *TextPosition, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Position: pos}
}

// RaiseICE creates an internal compiler error: a condition that earlier phases
// should have made impossible.
func RaiseICE(msg string, args ...interface{}) *CompileError {
	return Raise(KindInternal, nil, msg, args...)
}

// IsKind reports whether err is a compile error of the given kind.
func IsKind(err error, kind int) bool {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}

	return false
}

// Catch converts a compile error thrown by `panic` in a deeply recursive phase
// back into a returned error.  Any other panic value is re-raised.
// NB: This function must ALWAYS be deferred.
func Catch(err *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*err = cerr
		} else {
			panic(x)
		}
	}
}
