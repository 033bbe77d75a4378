package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked with the recovered value before exit.
// Installed once by main; default prints the stack after a raw terminal reset.
var crashHandler atomic.Pointer[func(r any)]

// SetCrashHandler installs the process-wide panic handler used by Go()
func SetCrashHandler(fn func(r any)) {
	crashHandler.Store(&fn)
}

// HandleCrash resets the terminal to a sane state and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r)
		return
	}

	// Raw-mode terminals leave the shell unusable without an explicit reset
	fmt.Fprint(os.Stdout, "\x1b[?1049l\x1b[?25h\x1b[0m")
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
