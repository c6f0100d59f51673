package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the status HTTP server.
type Config struct {
	// Enabled starts the status server next to the poller.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey protects the watch endpoints. Empty leaves them open.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Validate checks the port when the server is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
