package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger configures a logger writing to stderr, or to the log file when
// one is given. The returned closer releases the file.
func setupLogger(g *Globals) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return logger, closer, nil
}
