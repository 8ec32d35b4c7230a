//go:build !unix

package term

// notifyResize is a no-op where SIGWINCH does not exist.
func notifyResize(func()) (stop func()) {
	return func() {}
}
