package slog

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
)

type LogLevel = string

const (
	DEBUG LogLevel = "DEBUG"
	INFO           = "INFO"
	WARN           = "WARN"
	ERROR          = "ERROR"
	FATAL          = "FATAL"
)

var levels = []LogLevel{DEBUG, INFO, WARN, ERROR, FATAL}

var threshold = 1

// SetLevel drops every log below level. Accepts debug, info, warn and error in any case.
func SetLevel(level string) error {
	i := slices.Index(levels, strings.ToUpper(level))
	if i < 0 || levels[i] == FATAL {
		return fmt.Errorf("slog.SetLevel: unknown log level `%s`", level)
	}
	threshold = i
	return nil
}

func enabled(logLevel LogLevel) bool {
	return slices.Index(levels, logLevel) >= threshold
}

func logFLn(logLevel LogLevel, format string, v []any) {
	if !enabled(logLevel) {
		return
	}
	log.Printf(fmt.Sprintf("%s: %s\n", logLevel, format), v...)
}

func logLn(logLevel LogLevel, v []any) {
	if !enabled(logLevel) {
		return
	}
	v = slices.Insert(v, 0, any(fmt.Sprintf("%s: ", logLevel)))
	log.Print(v...)
}

// Calls to log.Printf with DEBUG tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Debugf(format string, v ...any) {
	logFLn(DEBUG, format, v)
}

// Calls to log.Printf with INFO tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Infof(format string, v ...any) {
	logFLn(INFO, format, v)
}

// Calls to log.Printf with INFO tag associated with the log. Arguments are handled in the manner of fmt.Print.
func Info(v ...any) {
	logLn(INFO, v)
}

// Calls to log.Printf with WARN tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Warnf(format string, v ...any) {
	logFLn(WARN, format, v)
}

// Calls to log.Printf with ERROR tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Errorf(format string, v ...any) {
	logFLn(ERROR, format, v)
}

// Calls to log.Printf with ERROR tag associated with the log. Arguments are handled in the manner of fmt.Print.
func Error(v ...any) {
	logLn(ERROR, v)
}

// Associate log with FATAL tag. Arguments are handled in the manner of fmt.Printf. Also, it calls os.Exit(1) to indicate failure
func Fatalf(format string, v ...any) {
	logFLn(FATAL, format, v)
	os.Exit(1)
}
