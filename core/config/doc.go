// Package config provides configuration management for the availability watcher.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Recgov: API base URL, facility and tour ids, request timeout
//   - Watch: Poll interval and per-tick concurrency
//   - Log: Logging level and format
//   - Server: Optional status server (enabled flag, port, API key)
//
// Nested keys map to environment variables with dots replaced by underscores,
// e.g. watch.interval is read from WATCH_INTERVAL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Watch.Interval)
package config
