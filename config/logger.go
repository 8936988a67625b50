package config

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logFile = "tengen/debug.log"

// InitLogger points the global zerolog logger at the debug log in the XDG
// state directory. The terminal belongs to the UI, so nothing is logged to
// stderr. The returned closer flushes the file.
func InitLogger(level string) (io.Closer, error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return nil, fmt.Errorf("locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if err := SetupLogger(f, level); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// SetupLogger sends the global logger to w at the given level. An empty
// level means info.
func SetupLogger(w io.Writer, level string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return &InvalidConfig{fmt.Sprintf("log level %q: %v", level, err)}
		}
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
