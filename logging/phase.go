package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// phaseSpinner is the spinner of the running phase; it is nil between phases.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

// phaseColumn is the width phase names are padded to so the timings line up.
const phaseColumn = len("Generating") + 2

func padPhase(phase string) string {
	if len(phase) >= phaseColumn-2 {
		return phase + "  "
	}

	return phase + strings.Repeat(" ", phaseColumn-len(phase))
}

// newPhasePrinter builds the printer a spinner ends with.
func newPhasePrinter(tag string, style *pterm.Style) *pterm.PrefixPrinter {
	return &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: style, Text: tag},
	}
}

// displayBeginPhase starts the spinner of a compilation phase.
func displayBeginPhase(phase string) {
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))
	spinner.SuccessPrinter = newPhasePrinter("Done", SuccessStyleBG)
	spinner.FailPrinter = newPhasePrinter("Fail", ErrorStyleBG)

	currentPhase = phase
	phaseStartTime = time.Now()
	phaseSpinner, _ = spinner.Start(padPhase(phase + "..."))
}

// displayEndPhase stops the running spinner, if any, marking the phase as a
// success or a failure.
func displayEndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	if success {
		elapsed := time.Since(phaseStartTime).Seconds()
		phaseSpinner.Success(padPhase(currentPhase), fmt.Sprintf("(%.3fs)", elapsed))
	} else {
		phaseSpinner.Fail(padPhase(currentPhase))
	}

	phaseSpinner = nil
}
