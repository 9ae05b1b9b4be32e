package service

import (
	"io"
	"log/slog"
)

// orDiscard returns logger, or a logger that drops everything when nil
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
