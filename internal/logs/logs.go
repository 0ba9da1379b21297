package logs

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var logger = log.New(os.Stderr)

var ErrUnknownLevel = errors.New("unknown log level")

var levels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// ParseLevel maps a level name (debug, info, warn, error, fatal) to a log.Level
func ParseLevel(level string) (log.Level, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return log.InfoLevel, errors.Wrapf(ErrUnknownLevel, "%q", level)
	}
	return lvl, nil
}

// Init sets the minimum level. Unknown levels fall back to info.
func Init(level string) {
	lvl, err := ParseLevel(level)
	if err != nil {
		logger.Warnf("%v, using info", err)
	}
	logger.SetLevel(lvl)
	logger.SetPrefix("frenchdeck")
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debug(format string, values ...any) {
	logger.Debugf(format, values...)
}

func Info(format string, values ...any) {
	logger.Infof(format, values...)
}

func Warn(format string, values ...any) {
	logger.Warnf(format, values...)
}

func Error(format string, values ...any) {
	logger.Errorf(format, values...)
}
