package fetcher

import "time"

// Default configuration values.
const (
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultRequestTimeout = 10 * time.Second
	defaultMaxRetries     = 3
	defaultBackoffMin     = 1 * time.Second
	defaultBackoffMax     = 3 * time.Second
)

// Config holds fetcher configuration.
type Config struct {
	UserAgent      string        `yaml:"user_agent" mapstructure:"user_agent"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries" mapstructure:"max_retries"`
	// BackoffMin and BackoffMax bound the uniform-random sleep between
	// retry attempts. The distribution is uniform, not exponential.
	BackoffMin time.Duration `yaml:"backoff_min" mapstructure:"backoff_min"`
	BackoffMax time.Duration `yaml:"backoff_max" mapstructure:"backoff_max"`
}

// WithDefaults returns a copy of the config with default values applied
// for zero-value fields.
func (c Config) WithDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.BackoffMin <= 0 {
		c.BackoffMin = defaultBackoffMin
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = defaultBackoffMax
	}
	if c.BackoffMax < c.BackoffMin {
		c.BackoffMax = c.BackoffMin
	}
	return c
}
