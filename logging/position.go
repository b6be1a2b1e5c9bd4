package logging

// TextPosition represents a positional range in the source text.  Lines and
// columns are 1-based, matching what the user sees in an editor.
type TextPosition struct {
	StartLn, StartCol int // starting line, starting column
	EndLn, EndCol     int // ending line, column trailing the last character (one over)
}

// NewTextPosition builds a single-line position beginning at line:col and
// spanning length characters.
func NewTextPosition(line, col, length int) *TextPosition {
	return &TextPosition{
		StartLn:  line,
		StartCol: col,
		EndLn:    line,
		EndCol:   col + length,
	}
}

// TextPositionFromRange takes two positions and computes the text position
// spanning them.
func TextPositionFromRange(start, end *TextPosition) *TextPosition {
	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}
