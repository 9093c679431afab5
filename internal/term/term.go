// Package term detects whether a file is attached to a terminal.
package term

import "os"

// IsTerminalFile reports whether f is a terminal. A nil file is not.
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return IsTerminal(f.Fd())
}
