package vex

import (
	"fmt"
	"os"
)

// abortf reports an unrecoverable dispatch-engine defect and terminates the
// process. A broken table or registry means the engine can no longer
// guarantee which instruction set a routine runs on, and silently
// substituting another variant could change numeric results undetectably,
// so there is no recovery path. Exit status matches an aborted process
// (128+SIGABRT).
func abortf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(134)
}
