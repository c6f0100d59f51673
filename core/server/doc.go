// Package server builds the optional read-only status server.
//
// The server is a Fiber app that runs next to the poller when server.enabled is
// set. Every request gets a ray id (X-Ray-ID) and a debug log line. GET /health is
// always public; feature routes sit behind the optional API key.
//
// # Configuration
//
// The Config struct defines whether the server runs, its port and the API key.
package server
