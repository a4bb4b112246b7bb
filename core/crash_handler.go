package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

// crash holds the process-wide panic policy. Frontends register the screen
// restore hook; the scene tasks and the main goroutine report through it
var crash = struct {
	mu     sync.Mutex
	once   sync.Once
	reset  func()
	out    io.Writer
	exitFn func(int)
}{out: os.Stderr, exitFn: os.Exit}

// SetCrashReset registers the hook that restores the terminal before a crash
// report is printed. Engine packages stay independent of the terminal library
func SetCrashReset(fn func()) {
	crash.mu.Lock()
	crash.reset = fn
	crash.mu.Unlock()
}

// HandleCrash reports a recovered panic and exits. Only the first crash is
// reported; a second goroutine panicking meanwhile just waits for the exit
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	crash.once.Do(func() {
		crash.mu.Lock()
		reset, out, exit := crash.reset, crash.out, crash.exitFn
		crash.mu.Unlock()

		if reset != nil {
			reset()
		}
		// The debug log keeps the report after the terminal scrolls away
		log.Printf("Crash: %v\n%s", r, stack)

		fmt.Fprintf(out, "\r\n\x1b[31mbottlesmash crashed: %v\x1b[0m\r\n", r)
		fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", stack)
		if f, ok := out.(*os.File); ok {
			f.Sync()
		}
		exit(1)
	})
	select {}
}

// Go runs fn on a new goroutine that reports panics through HandleCrash
// The scene frame and background tasks start this way so a panic restores
// the terminal before the process exits
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
