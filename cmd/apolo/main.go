package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/apolo-devops/apolo/internal/cli"
	"github.com/apolo-devops/apolo/pkg/apolo"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(apolo.ExitPanic)
		}
	}()

	if os.Getenv("APOLO_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(apolo.ExitCodeForError(err))
	}
}
