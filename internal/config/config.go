package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openclaw/dailyintel/internal/reddit"
)

// ErrMissingAPIKey is returned by Validate when no search credential is
// configured. It is fatal: the run aborts before any query and writes
// nothing.
var ErrMissingAPIKey = errors.New("missing env var: BRAVE_API_KEY")

type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Reddit  RedditConfig  `yaml:"reddit"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// APIKey is the search credential. Supplied out-of-band via the
	// BRAVE_API_KEY environment variable, never via the config file.
	APIKey string `yaml:"-"`
}

type SearchConfig struct {
	Freshness      string `yaml:"freshness"`
	Count          int    `yaml:"count"`
	Country        string `yaml:"country"`
	Lang           string `yaml:"lang"`
	QueryDelayMS   int    `yaml:"query_delay_ms"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RedditConfig struct {
	Subreddits    []string `yaml:"subreddits"`
	PostsPerSub   int      `yaml:"posts_per_sub"`
	MaxSubreddits int      `yaml:"max_subreddits"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Timezone string `yaml:"timezone"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Freshness:      "pd",
			Count:          6,
			Country:        "CN",
			Lang:           "zh-hans",
			QueryDelayMS:   120,
			TimeoutSeconds: 25,
		},
		Reddit: RedditConfig{
			Subreddits:    []string{"LocalLLaMA", "MachineLearning", "OpenAI", "AI_Agents"},
			PostsPerSub:   6,
			MaxSubreddits: 8,
		},
		Output: OutputConfig{
			Dir:      "docs",
			Timezone: "Asia/Shanghai",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and merges it over defaults, then
// applies environment overrides. If the file does not exist, defaults
// are used without error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No config file found, using defaults", "path", path)
		} else {
			return cfg, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	cfg.APIKey = strings.TrimSpace(os.Getenv("BRAVE_API_KEY"))

	if subs := strings.TrimSpace(os.Getenv("REDDIT_SUBREDDITS")); subs != "" {
		cfg.Reddit.Subreddits = reddit.ParseSubreddits(subs)
	}

	return cfg, nil
}

// Validate checks the configuration surface the pipeline depends on.
// Everything except the credential is treated as an opaque parameter.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// QueryDelay returns the inter-query pause as a duration.
func (c Config) QueryDelay() time.Duration {
	return time.Duration(c.Search.QueryDelayMS) * time.Millisecond
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Search.TimeoutSeconds) * time.Second
}

// LogLevel parses the configured logging level, defaulting to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
