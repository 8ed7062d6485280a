package app

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Set with -ldflags "-X github.com/heartmarshall/receptionist-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /live and /ready.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s", Version, Commit)
}

// buildAttrs describes the running binary in startup logs.
func buildAttrs(service string) slog.Attr {
	return slog.Group("build",
		slog.String("service", service),
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
		slog.String("go", runtime.Version()),
	)
}
