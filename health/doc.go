// Package health provides the health status reported by the schema
// registry server. The server is healthy when a schema document is loaded
// and valid; there is nothing else that can degrade at runtime, so the
// status is computed once at startup and timestamped per request.
package health
