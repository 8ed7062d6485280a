// Command edge is the browser-facing proxy in front of the backend.
//
// It needs API_INTERNAL_URL (or NEXT_PUBLIC_API_URL) and JWT_PUBLIC_KEY_BASE64.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/receptionist-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunEdge(ctx); err != nil {
		slog.Error("edge stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
