package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"github.com/spf13/viper"
)

type Config struct {
	DBPath             string
	IndexDir           string
	IndexWorkers       int
	ContentDir         string
	WatchContent       bool
	AnalyzerLanguage   string
	Scoring            searcher.SimiliarityScoring
	BM25               searcher.BM25Params
	PageRankDamping    float64
	PageRankIterations int
	APIPort            int
	APITimeout         time.Duration
	LogLevel           string
	LogTimeFormat      string
}

func setDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("DB_PATH", "irlab.db")
	viper.SetDefault("INDEX_DIR", "irlab_index")
	viper.SetDefault("INDEX_WORKERS", 4)
	viper.SetDefault("CONTENT_DIR", "content")
	viper.SetDefault("WATCH_CONTENT", true)
	viper.SetDefault("ANALYZER_LANGUAGE", "lab")
	viper.SetDefault("SCORING", searcher.TF_IDF_COSINE.String())
	viper.SetDefault("BM25_K1", searcher.DefaultBM25Params.K1)
	viper.SetDefault("BM25_B", searcher.DefaultBM25Params.B)
	viper.SetDefault("PAGERANK_DAMPING", 0.85)
	viper.SetDefault("PAGERANK_ITERATIONS", 20)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
}

// New reads .env, then config.yaml from the working directory, then the
// environment. Neither file is required.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error when loading .env: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	return fromViper()
}

func fromViper() (*Config, error) {
	scoring, err := searcher.ParseSimiliarityScoring(viper.GetString("SCORING"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:             viper.GetString("DB_PATH"),
		IndexDir:           viper.GetString("INDEX_DIR"),
		IndexWorkers:       viper.GetInt("INDEX_WORKERS"),
		ContentDir:         viper.GetString("CONTENT_DIR"),
		WatchContent:       viper.GetBool("WATCH_CONTENT"),
		AnalyzerLanguage:   viper.GetString("ANALYZER_LANGUAGE"),
		Scoring:            scoring,
		BM25:               searcher.BM25Params{K1: viper.GetFloat64("BM25_K1"), B: viper.GetFloat64("BM25_B")},
		PageRankDamping:    viper.GetFloat64("PAGERANK_DAMPING"),
		PageRankIterations: viper.GetInt("PAGERANK_ITERATIONS"),
		APIPort:            viper.GetInt("API_PORT"),
		APITimeout:         viper.GetDuration("API_TIMEOUT"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
		LogTimeFormat:      viper.GetString("LOG_TIME_FORMAT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.BM25.K1 < 0:
		return fmt.Errorf("BM25_K1 must be >= 0, got %v", c.BM25.K1)
	case c.BM25.B < 0 || c.BM25.B > 1:
		return fmt.Errorf("BM25_B must be within [0,1], got %v", c.BM25.B)
	case c.PageRankDamping < 0 || c.PageRankDamping > 1:
		return fmt.Errorf("PAGERANK_DAMPING must be within [0,1], got %v", c.PageRankDamping)
	case c.PageRankIterations < 0:
		return fmt.Errorf("PAGERANK_ITERATIONS must be >= 0, got %d", c.PageRankIterations)
	case c.IndexWorkers < 1:
		return fmt.Errorf("INDEX_WORKERS must be >= 1, got %d", c.IndexWorkers)
	}
	return nil
}
