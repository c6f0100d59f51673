package watch

import (
	"fmt"
	"time"
)

// Config holds configuration for the polling loop.
type Config struct {
	// Interval is the fixed delay between tick starts.
	Interval time.Duration `mapstructure:"interval" default:"1s"`
	// MaxConcurrency bounds the daily requests in flight within one tick.
	// Zero or less means one request per date, all at once.
	MaxConcurrency int `mapstructure:"max_concurrency" default:"4"`
}

// Validate checks that the loop can be scheduled.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("watch interval must be positive, got %s", c.Interval)
	}
	return nil
}
