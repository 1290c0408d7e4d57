// Package config loads settings for the vader command line tool.
package config

// Config is the root application configuration.
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	Batch   BatchConfig   `yaml:"batch"`
	Log     LogConfig     `yaml:"log"`
}

// LexiconConfig selects the lexicon resource. An empty path means the
// embedded default lexicon.
type LexiconConfig struct {
	Path string `yaml:"path" env:"VADER_LEXICON_PATH"`
}

// BatchConfig holds settings for scoring many texts at once.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"VADER_BATCH_WORKERS" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}
