//go:build !unix

package terminal

// watchResize is a no-op where SIGWINCH does not exist.
func watchResize(*StdConsole) (stop func()) {
	return func() {}
}
