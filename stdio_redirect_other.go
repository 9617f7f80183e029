//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectStdIO swaps os.Stdout and os.Stderr for the file. Runtime panic
// output still goes to the original stderr.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
