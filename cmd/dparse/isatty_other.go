//go:build !linux

package main

// isTerminal has no portable ioctl probe on non-Linux build targets;
// treating stdin as non-interactive here just means dparse falls back
// to reading whatever is on stdin, which is always safe for piped
// input and only degrades the "you forgot to pipe anything" error
// message on an interactive non-Linux shell.
func isTerminal(fd uintptr) bool {
	return false
}
