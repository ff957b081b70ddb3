package main

import (
	"io"
	"log/slog"
	"os"
)

// theLog reports status on stderr, apart from document output.
var theLog = newLog(os.Stderr)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: terseAttr,
	}))
}

// terseAttr drops the time and the INFO level.
func terseAttr(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		return slog.Attr{}
	case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
		return slog.Attr{}
	}
	return a
}
