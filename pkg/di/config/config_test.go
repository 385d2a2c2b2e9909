package config

import (
	"os"
	"time"
	"testing"

	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestNewDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "irlab.db", cfg.DBPath)
	assert.Equal(t, searcher.TF_IDF_COSINE, cfg.Scoring)
	assert.Equal(t, searcher.DefaultBM25Params, cfg.BM25)
	assert.Equal(t, 20, cfg.PageRankIterations)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.RFC3339Nano, cfg.LogTimeFormat)
}

func TestNewFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SCORING", "bm25")
	t.Setenv("BM25_K1", "1.2")
	t.Setenv("PAGERANK_ITERATIONS", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, searcher.BM25, cfg.Scoring)
	assert.Equal(t, 1.2, cfg.BM25.K1)
	assert.Equal(t, 5, cfg.PageRankIterations)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := Config{BM25: searcher.DefaultBM25Params, PageRankDamping: 0.85, PageRankIterations: 20, IndexWorkers: 1}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.BM25.B = 1.5
	assert.Error(t, bad.Validate())

	bad = valid
	bad.PageRankDamping = -0.1
	assert.Error(t, bad.Validate())

	bad = valid
	bad.PageRankIterations = -1
	assert.Error(t, bad.Validate())
}
