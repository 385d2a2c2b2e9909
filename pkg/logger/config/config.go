package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

const (
	DEBUG_LEVEL = int(zapcore.DebugLevel)
	INFO_LEVEL  = int(zapcore.InfoLevel)
	WARN_LEVEL  = int(zapcore.WarnLevel)
	ERROR_LEVEL = int(zapcore.ErrorLevel)
	FATAL_LEVEL = int(zapcore.FatalLevel)
)

var ErrInvalidLogConfig = errors.New("invalid logger configuration")

// Configuration of the application logger. Level follows zapcore: -1 debug
// up to 5 fatal.
type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("%w: level %d out of range [%d,%d]", ErrInvalidLogConfig, c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: empty time format", ErrInvalidLogConfig)
	}
	return nil
}
