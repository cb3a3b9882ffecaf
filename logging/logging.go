// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const defaultTimestampFormat = time.RFC3339

var discardLogger = func() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}()

// InitLogging configures the standard logger for the CLI. Logs always go to stderr so that
// stdout carries only the command result.
func InitLogging(debug bool, logLevel, logFormat string) error {
	if err := InitLogLevel(debug, logLevel); err != nil {
		return err
	}

	hook, err := NewConsoleHook(logFormat, os.Stderr)
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

// InitLogLevel configures the logging level.  The debug flag takes precedence if set,
// otherwise the logLevel flag (trace, debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// InitLogFormat configures the log format of the standard logger, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	formatter, err := newFormatter(logFormat)
	if err != nil {
		return err
	}
	log.SetFormatter(formatter)
	return nil
}

// InitLogOutput sets the output of the standard logger; tests use io.Discard.
func InitLogOutput(output io.Writer) {
	log.SetOutput(output)
}

func newFormatter(logFormat string) (log.Formatter, error) {
	switch logFormat {
	case TextFormat:
		return &log.TextFormatter{FullTimestamp: true}, nil
	case JSONFormat:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

// ConsoleHook writes formatted log entries to a single writer.
type ConsoleHook struct {
	formatter log.Formatter
	writer    io.Writer
}

// NewConsoleHook creates a new log hook for writing to the given console stream.
func NewConsoleHook(logFormat string, writer io.Writer) (*ConsoleHook, error) {
	formatter, err := newFormatter(logFormat)
	if err != nil {
		return nil, err
	}
	if textFormatter, ok := formatter.(*log.TextFormatter); ok {
		textFormatter.ForceColors = isTerminal(writer)
	}
	return &ConsoleHook{formatter: formatter, writer: writer}, nil
}

func isTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}

func (hook *ConsoleHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *ConsoleHook) Fire(entry *log.Entry) error {
	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read entry, %v", err)
		return err
	}

	if len(lineBytes) > MaxLogEntryLength {
		if _, err = hook.writer.Write(lineBytes[:MaxLogEntryLength]); err != nil {
			return err
		}
		_, err = hook.writer.Write([]byte("<truncated>\n"))
		return err
	}

	_, err = hook.writer.Write(lineBytes)
	return err
}

type JSONFormatter struct {
	// TimestampFormat sets the format used for marshaling timestamps.
	TimestampFormat string
	// DisableTimestamp allows disabling automatic timestamps in output
	DisableTimestamp bool
}

func (f *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	data := make(map[string]string, len(entry.Data)+3)
	for k, v := range entry.Data {
		switch v := v.(type) {
		case error:
			// Otherwise errors are ignored by `encoding/json`
			data[k] = v.Error()
		case nil:
			continue
		default:
			data[k] = fmt.Sprintf("%+v", v)
		}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	if !f.DisableTimestamp {
		data["@timestamp"] = entry.Time.Format(timestampFormat)
	}
	data["message"] = entry.Message
	data["level"] = entry.Level.String()

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if err := json.NewEncoder(b).Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON, %v", err)
	}

	return b.Bytes(), nil
}
