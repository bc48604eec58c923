// Package main is the entry point for the verdict CLI.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, errDocumentInvalid) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
