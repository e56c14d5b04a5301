package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component that can stop gracefully
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish
// until ctx expires. Errors are logged, not returned.
func GracefulShutdown(ctx context.Context, server Stopper) {
	slog.Info(LogMsgShuttingDownServer)

	if err := server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
