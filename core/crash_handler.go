package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// exit is swapped by tests
var exit = os.Exit

// HandleCrash is the unified panic handler: it restores the environment, prints the stack trace and exits
// restore may be nil; it runs before anything is printed so the message lands on a sane terminal
func HandleCrash(r any, restore func()) {
	if r == nil {
		return
	}

	if restore != nil {
		restore()
	}

	writeCrash(os.Stderr, r, debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

func writeCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}
