package bootstrap

import (
	"context"
	"log/slog"

	"github.com/fitquest/FitQuest_Go/internal/server"
)

// GracefulShutdown stops the HTTP server, letting in-flight requests
// finish within the context deadline. Errors are logged but do not stop
// the shutdown sequence.
func GracefulShutdown(ctx context.Context, srv *server.Server) {
	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
