// Package main implements the entry point for the iamc tool: a loader,
// validator, and converter for the IAMC data convention expressed in the
// SDMX information model.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/khaeru/iamc-sdmx-demo/cmd/iamc/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
