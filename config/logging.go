package config

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// SetupLogging sends the logs of level and above to w, colored when w is a terminal.
func SetupLogging(level string, w io.Writer) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = log.IsTerminal(f.Fd())
	}
	log.DefaultLogger = log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput: color,
			Writer:      w,
		},
	}
}
