// File: scanner/scan.go
package scanner

import (
	"fmt"
	"os"
)

// ScanFile reads a source file and scans its contents.
func ScanFile(path string) ([]Token, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return NewScanner(string(content)).ScanTokens()
}
