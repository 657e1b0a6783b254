//go:build linux

package main

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a character-device terminal,
// the same TTY-vs-pipe distinction the teacher's cmd/funxy/main.go makes
// with os.Stdin.Stat()'s os.ModeCharDevice bit, narrowed here to an
// ioctl probe so -print's stdout path and stdin detection agree on what
// "interactive" means.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
