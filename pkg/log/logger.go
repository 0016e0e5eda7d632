// Package log gives each renderer component its own named logger. All
// loggers share one go-logging backend, so sink and verbosity are global.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level orders verbosity from Debug (everything) to Error (failures only)
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// levels maps each Level to its backend level and the names ParseLevel accepts
var levels = []struct {
	level   Level
	backend logging.Level
	names   []string
}{
	{Debug, logging.DEBUG, []string{"debug"}},
	{Info, logging.INFO, []string{"info"}},
	{Notice, logging.NOTICE, []string{"notice", ""}},
	{Warning, logging.WARNING, []string{"warning", "warn"}},
	{Error, logging.ERROR, []string{"error"}},
}

// Lines read as "[15:04:05.000] [renderer] [INFO] message"
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of go-logging's Logger that packages log through
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a component; name appears in every line it writes.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all log output to sink and drops verbosity back to Info.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(formatted)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel hides messages below level in every component.
func SetLevel(level Level) {
	for _, l := range levels {
		if l.level == level {
			leveledBackend.SetLevel(l.backend, "")
			return
		}
	}
}

// ParseLevel maps a case-insensitive name such as "debug" or "WARN" to a
// Level. An empty name means Notice.
func ParseLevel(name string) (Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range levels {
		for _, n := range l.names {
			if n == name {
				return l.level, true
			}
		}
	}
	return Notice, false
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
