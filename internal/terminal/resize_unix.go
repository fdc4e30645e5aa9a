//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// watchResize forwards SIGWINCH to the console until the returned func is called.
func watchResize(c *StdConsole) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				c.notifyResize()
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(stopCh)
		<-doneCh
	}
}
