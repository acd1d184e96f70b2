package app

import (
	"context"
	"os/signal"
	"syscall"
)

// ContextWithSignals creates a context that is canceled when the application
// receives an interrupt or termination signal. The batch runner stops after
// the in-flight genus, leaving the run log intact.
func ContextWithSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
