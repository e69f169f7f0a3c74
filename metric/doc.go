// Package metric defines the Prometheus collectors for the iamc toolkit:
// schema loads and validation outcomes, dataset ingestion volume, and the
// HTTP surface of the registry server. All collectors share the "iamc"
// namespace and register against an explicit registry, never the global
// default.
package metric
