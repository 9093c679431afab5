//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !windows

package term

// IsTerminal always reports false on platforms without terminal ioctls.
func IsTerminal(fd uintptr) bool { return false }
