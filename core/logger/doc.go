// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development profile
// (debug level, human readable) and a production profile (info and above).
// All output goes to stderr; stdout carries the notification stream.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so that status server logs can be correlated per request.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Polling started")
package logger
