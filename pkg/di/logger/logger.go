package logger_di

import (
	"fmt"
	"strconv"

	diConfig "github.com/lintang-b-s/ir-lab/pkg/di/config"
	"github.com/lintang-b-s/ir-lab/pkg/logger/config"
	myZap "github.com/lintang-b-s/ir-lab/pkg/logger/zap"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. LOG_LEVEL takes a zapcore level name
// ("debug", "info", ...) or its number.
func New(appCfg *diConfig.Config) (*zap.Logger, func(), error) {
	level, err := parseLevel(appCfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	cfg := config.Configuration{
		Level:      level,
		TimeFormat: appCfg.LogTimeFormat,
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := myZap.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return log, func() { _ = log.Sync() }, nil
}

func parseLevel(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", config.ErrInvalidLogConfig, err)
	}
	return int(level), nil
}
