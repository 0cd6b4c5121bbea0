// Package logger provides colorized, leveled console output for the setup
// tool. Levels are plain Printf-style function variables so call sites stay
// as cheap and direct as fmt.Printf.
package logger

import (
	"github.com/fatih/color"
)

// Info prints informational messages in green. Used for progress lines and
// successful step outcomes.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints warnings in bright magenta. Used for the soft-skip branches
// that never abort the run.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints failures and diagnostic checklists in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints trace output in cyan when enabled. It defaults to a no-op so
// library code can log unconditionally; Init swaps in the real printer for
// --debug runs.
var Debug = func(format string, a ...any) {}

// Init wires the Debug level according to the --debug flag. The CLI runs it
// in PersistentPreRun, before any command logic.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
