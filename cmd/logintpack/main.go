// Package main implements the logintpack CLI for packing, inspecting and
// unpacking log-quantized columns.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
