package clientlog

import (
	"io"
	"log/slog"
	"strings"
)

// WriterSink returns a Sink that writes each rendered block to w.
func WriterSink(w io.Writer) Sink {
	return func(line string) error {
		_, err := io.WriteString(w, line)
		return err
	}
}

// SlogSink returns a Sink that emits each rendered block at debug level.
// The block keeps its interior newlines; the trailing one is dropped since
// the handler terminates the record itself.
func SlogSink(logger *slog.Logger) Sink {
	return func(line string) error {
		logger.Debug("fauna exchange", "block", strings.TrimSuffix(line, "\n"))
		return nil
	}
}
