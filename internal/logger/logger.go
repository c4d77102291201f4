// Package logger implements the leveled stderr logger used across the
// server. Stdout carries the MCP protocol stream, so nothing in this
// package may ever write there.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/nimbus-cloud/nimbus-mcp/internal/buildinfo"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Logger struct {
	out   io.Writer
	level Level
}

// New returns a logger writing to out at the given level.
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// FromEnv returns a logger whose level is taken from LOG_LEVEL.
// Development builds default to debug.
func FromEnv(out io.Writer) *Logger {
	return &Logger{
		out:   out,
		level: levelFromEnv(),
	}
}

func levelFromEnv() Level {
	lit, ok := os.LookupEnv("LOG_LEVEL")
	if !ok && buildinfo.IsDev() {
		lit = "debug"
	} else {
		lit = strings.ToLower(lit)
	}

	switch lit {
	default:
		return Info
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	}
}

func (l *Logger) print(tag aurora.Value, v ...interface{}) {
	fmt.Fprintln(l.out, tag, fmt.Sprint(v...))
}

func (l *Logger) Debug(v ...interface{}) {
	if l.level <= Debug {
		l.print(aurora.Faint("DEBUG"), v...)
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.level <= Debug {
		l.print(aurora.Faint("DEBUG"), fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Info(v ...interface{}) {
	if l.level <= Info {
		l.print(aurora.Faint("INFO"), v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.level <= Info {
		l.print(aurora.Faint("INFO"), fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Warn(v ...interface{}) {
	if l.level <= Warn {
		l.print(aurora.Yellow("WARN"), v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.level <= Warn {
		l.print(aurora.Yellow("WARN"), fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Error(v ...interface{}) {
	if l.level <= Error {
		l.print(aurora.Red("ERROR"), v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.level <= Error {
		l.print(aurora.Red("ERROR"), fmt.Sprintf(format, v...))
	}
}
