package logger_di

import (
	"os"
	"testing"

	diConfig "github.com/lintang-b-s/ir-lab/pkg/di/config"
	"github.com/lintang-b-s/ir-lab/pkg/logger/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "debug", want: config.DEBUG_LEVEL},
		{in: "INFO", want: config.INFO_LEVEL},
		{in: "error", want: config.ERROR_LEVEL},
		{in: "1", want: config.WARN_LEVEL},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLevel("loud")
	assert.ErrorIs(t, err, config.ErrInvalidLogConfig)
}

func TestNewFollowsConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("LOG_LEVEL", "debug")

	appCfg, err := diConfig.New()
	require.NoError(t, err)

	log, cleanup, err := New(appCfg)
	require.NoError(t, err)
	defer cleanup()
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	appCfg.LogLevel = "warn"
	log, cleanup2, err := New(appCfg)
	require.NoError(t, err)
	defer cleanup2()
	assert.False(t, log.Core().Enabled(zap.InfoLevel))

	appCfg.LogLevel = "loud"
	_, _, err = New(appCfg)
	assert.ErrorIs(t, err, config.ErrInvalidLogConfig)
}
