package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var Debug = false

// DebugLog is a no-op logger until InitDebugLog enables it.
var DebugLog = zerolog.Nop()

func CheckDebug() bool {
	debug := os.Getenv("PROJGEN_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens <logDir>/debug.log when PROJGEN_DEBUG is set. The returned
// closer is always non-nil.
func InitDebugLog(logDir string) io.Closer {
	if !CheckDebug() {
		return io.NopCloser(nil)
	}

	if err := EnsureDir(logDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create log directory %s: %v\n", logDir, err)
		return io.NopCloser(nil)
	}

	logPath := filepath.Join(logDir, "debug.log")

	// 0600: the log contains prompts and model replies
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return io.NopCloser(nil)
	}

	Debug = true
	DebugLog = zerolog.New(f).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	DebugLog.Info().Str("path", logPath).Msg("debug logging started")
	return f
}
