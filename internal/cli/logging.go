package cli

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/tartampluch/chicago-today/internal/config"
)

// setupLogging returns the structured logger for one run. stdout carries the
// result line only, so logs go to w under --debug and are discarded otherwise.
func setupLogging(w io.Writer, debug bool) *slog.Logger {
	if !debug || w == nil {
		return discardLogger()
	}

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(log *slog.Logger) {
	log.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompCLI,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
