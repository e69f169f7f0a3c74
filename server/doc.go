// Package server exposes a loaded schema as a small read-only HTTP
// registry.
//
// The document is immutable process-wide state: it is loaded and validated
// once at startup and every endpoint serves from that in-memory copy, so
// handlers need no locking. Endpoints:
//
//	GET  /v1/schema      the full document
//	GET  /v1/concepts    the concept set
//	GET  /v1/dimensions  dimension roles bound to their concepts
//	GET  /v1/attributes  attribute roles bound to their concepts
//	GET  /v1/variables   the variable vocabulary and derived code paths
//	POST /v1/validate    validate a document sent in the request body
//	POST /v1/convert     convert a wide IAMC CSV body to long form
//	GET  /healthz        health status
//	GET  /metrics        Prometheus metrics
//
// POST /v1/validate accepts YAML (or JSON, a YAML subset) and reports every
// violation found, mirroring (*schema.Document).Validate. POST /v1/convert
// ingests a wide IAMC CSV structured by the served schema and returns the
// long-form records.
package server
