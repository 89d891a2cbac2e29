package config

import (
	"fmt"
	"strings"
)

var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warning": true,
	"warn":    true,
	"error":   true,
}

// Validate checks the loaded configuration. Load calls it
// automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxTextLength <= 0 {
		return fmt.Errorf("server.max_text_length must be > 0 (got %d)", c.Server.MaxTextLength)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %v)", c.Server.RateLimit)
	}
	if strings.TrimSpace(c.Dictionary.Path) == "" {
		return fmt.Errorf("dictionary.path must not be empty")
	}
	if c.Cache.Enabled() && c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0 (got %v)", c.Cache.TTL)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level %q is not one of debug, info, warning, error", c.Log.Level)
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SplitList splits a comma-separated setting, dropping empty items.
func SplitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
