// Package middleware contains HTTP middleware for the status server.
//
// # Components
//
//   - auth: Optional API key check. Disabled when no key is configured.
//   - rayid: Generates a request id (ray id) for every request, stores it in the
//     context locals and echoes it in the X-Ray-ID response header.
package middleware
