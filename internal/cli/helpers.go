package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalContext is cancelled on SIGINT or SIGTERM and remembers which one
// arrived, so a run can say how it stopped.
type SignalContext struct {
	context.Context
	Cancel context.CancelFunc

	sigCh chan os.Signal
	mu    sync.Mutex
	sig   os.Signal
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Signal delivery stops once the context is done.
func NewSignalContext(parent context.Context) *SignalContext {
	sc := newSignalContext(parent)
	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sc.Done()
		signal.Stop(sc.sigCh)
	}()
	return sc
}

func newSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// stopReason names why ctx ended, using the signal when ctx is a
// SignalContext.
func stopReason(ctx context.Context) string {
	if sc, ok := ctx.(interface{ Signal() os.Signal }); ok {
		switch sc.Signal() {
		case os.Interrupt:
			return "Interrupted"
		case syscall.SIGTERM:
			return "Terminated"
		}
	}
	return "Cancelled"
}

// printSystemMessage prints a standardized system message to w.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
