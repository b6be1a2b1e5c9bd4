package logging

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lcc/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// LogContext is the file a compile message refers to.  Lines may be supplied
// when the source has already been read; otherwise it is re-read from disk.
type LogContext struct {
	FilePath string
	Lines    []string
}

// CompileMessage is a compile error or warning waiting to be displayed.
type CompileMessage struct {
	Err     *CompileError
	Context *LogContext
	IsError bool
}

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	printTagged(ErrorStyleBG, ErrorColorFG, tag, err.Error())
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	printTagged(InfoStyleBG, InfoColorFG, tag, msg)
}

func printTagged(tagStyle *pterm.Style, msgColor pterm.Color, tag, msg string) {
	tagStyle.Print(tag)
	msgColor.Println(" " + msg)
}

// -----------------------------------------------------------------------------

func displayConfigError(kind, message string) {
	printTagged(ErrorStyleBG, ErrorColorFG, kind+" Error", message)
}

func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Err.Message)

	if cm.Err.Position != nil && cm.Context != nil {
		cm.displayCodeSelection()
	}
}

// bannerWidth is the widest a message banner gets.
const bannerWidth = 50

// displayBanner displays the banner on top of all compilation messages:
//
//	-- Semantic Error ----------------- prog.lc
//	line 3, column 5:
func (cm *CompileMessage) displayBanner() {
	title := strings.ToUpper(cm.Err.KindName()[:1]) + cm.Err.KindName()[1:]
	style := WarnStyleBG
	if cm.IsError {
		title += " Error"
		style = ErrorStyleBG
	} else {
		title += " Warning"
	}

	fileName := "<source>"
	if cm.Context != nil {
		fileName = filepath.Base(cm.Context.FilePath)
	}

	width := pterm.GetTerminalWidth() / 2
	if width > bannerWidth {
		width = bannerWidth
	}

	dashes := width - len(title) - len(fileName) - 1
	if dashes < 1 {
		dashes = 1
	}

	fmt.Print("\n\n-- ")
	style.Print(title)
	fmt.Print(" ", strings.Repeat("-", dashes), " ")
	InfoColorFG.Println(fileName)

	if pos := cm.Err.Position; pos != nil {
		fmt.Printf("line %d, column %d: ", pos.StartLn, pos.StartCol)
	}
}

// sourceLines returns the lines of the file in context, reading it if they
// were not supplied.
func (cm *CompileMessage) sourceLines() []string {
	if cm.Context.Lines != nil {
		return cm.Context.Lines
	}

	f, err := os.Open(cm.Context.FilePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	for sc := bufio.NewScanner(f); sc.Scan(); {
		lines = append(lines, sc.Text())
	}

	return lines
}

// displayCodeSelection prints the offending line behind its line number and
// puts carets under the offending token.
func (cm *CompileMessage) displayCodeSelection() {
	pos := cm.Err.Position
	source := cm.sourceLines()
	if pos.StartLn < 1 || pos.StartLn > len(source) {
		return
	}

	// columns are 1-based and counted from the first non-blank character
	line := strings.TrimLeft(strings.ReplaceAll(source[pos.StartLn-1], "\t", " "), " ")
	gutter := strconv.Itoa(pos.StartLn) + " "

	fmt.Println()
	InfoColorFG.Print(gutter)
	fmt.Println("|  " + line)

	offset := pos.StartCol - 1
	if offset < 0 {
		offset = 0
	}

	width := pos.EndCol - pos.StartCol
	if width < 1 {
		width = 1
	}

	fmt.Print(strings.Repeat(" ", len(gutter)), "|  ", strings.Repeat(" ", offset))
	ErrorColorFG.Println(strings.Repeat("^", width))
	fmt.Println()
}

const fatalErrorPostlude = `
This is likely a bug in the compiler or a problem with the host file system.`

func displayFatalError(msg string) {
	displayEndPhase(false)

	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println(fatalErrorPostlude)
}

// displayCompileHeader prints the compiler version and the name of the source
// file before compilation starts.
func displayCompileHeader(srcPath string) {
	fmt.Print("lcc ")
	InfoColorFG.Print("v" + common.LCCVersion)
	fmt.Print(" -- source: ")
	InfoColorFG.Println(filepath.Base(srcPath))
}

// displayCompilationFinished prints the closing line of a compilation:
//
//	All done! (0 errors, 1 warning)
func displayCompilationFinished(success bool, errorCount, warningCount int) {
	fmt.Println()

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")
	printCount(errorCount, "error", ErrorColorFG)
	fmt.Print(", ")
	printCount(warningCount, "warning", WarnColorFG)
	fmt.Println(")")
}

// printCount prints a count and its noun, coloured only when non-zero.
func printCount(n int, noun string, color pterm.Color) {
	if n == 0 {
		color = SuccessColorFG
	}

	color.Print(n)

	if n == 1 {
		fmt.Print(" " + noun)
	} else {
		fmt.Print(" " + noun + "s")
	}
}
