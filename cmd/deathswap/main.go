// Package main implements the deathswap host CLI.
package main

import (
	"fmt"
	"os"

	"github.com/deathswap/deathswap/internal/runtime"
)

var (
	// Version is set at build time
	version = "1.0.0"
	// BuildDate is set at build time
	buildDate = "unknown"
)

func main() {
	rt, err := runtime.NewRuntime(runtime.Options{
		AppName:   "deathswap",
		Version:   version,
		BuildDate: buildDate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rt.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
