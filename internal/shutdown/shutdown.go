package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

// Hook runs once when the process is asked to stop.
type Hook func(sig os.Signal)

// Register runs hook on its own goroutine after the first of sigs arrives.
// Later signals get their default disposition, so a second one terminates
// the process while the hook is still draining. The returned stop func
// unregisters and waits for a running hook to finish.
func Register(hook Hook, sigs ...os.Signal) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	wait := watch(sigCh, func() { signal.Stop(sigCh) }, hook)

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(sigCh)
			wait()
		})
	}
}

func watch(sigCh <-chan os.Signal, release func(), hook Hook) (wait func()) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		sig, ok := <-sigCh
		if !ok {
			return
		}
		release()
		hook(sig)
	}()

	return func() { <-done }
}
