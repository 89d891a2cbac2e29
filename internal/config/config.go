package config

import "time"

// Config is the root server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Cache      CacheConfig      `yaml:"cache"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxTextLength bounds the text accepted by the translation endpoints,
	// in characters.
	MaxTextLength int `yaml:"max_text_length" env:"SERVER_MAX_TEXT_LENGTH" env-default:"5000"`
	// RateLimit is the number of API requests per second allowed per
	// client IP; zero disables limiting.
	RateLimit float64 `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"0"`
	RateBurst int     `yaml:"rate_burst" env:"SERVER_RATE_BURST" env-default:"20"`
}

// DictionaryConfig locates the dictionary file.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"DICTIONARY_PATH" env-default:"data/dictionary.json"`
	// Watch reloads the dictionary when the file changes on disk.
	// Defaults to true in defaults(), not via env-default, which would
	// also replace an explicit false.
	Watch bool `yaml:"watch" env:"DICTIONARY_WATCH"`
}

// CacheConfig holds the translation cache settings. An empty RedisAddr
// disables caching.
type CacheConfig struct {
	RedisAddr string        `yaml:"redis_addr" env:"CACHE_REDIS_ADDR"`
	RedisDB   int           `yaml:"redis_db"   env:"CACHE_REDIS_DB"   env-default:"0"`
	Password  string        `yaml:"password"   env:"CACHE_PASSWORD"`
	TTL       time.Duration `yaml:"ttl"        env:"CACHE_TTL"        env-default:"24h"`
}

// Enabled reports whether a cache backend is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-ID"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// LogConfig holds logging settings. An empty Path logs to stderr in
// human-readable form.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Path  string `yaml:"path"  env:"LOG_PATH"`
}
