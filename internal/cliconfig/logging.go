package cliconfig

import (
	"github.com/rs/zerolog"

	"github.com/bft-labs/recipebox/pkg/log"
)

// Logger returns the console logger used by the CLI at the given level.
// An unparseable level falls back to info.
func Logger(level string) *log.ZerologAdapter {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return log.NewZerologAdapter(lvl)
}
