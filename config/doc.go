// Package config defines the configuration for the iamc tool and the schema
// registry server: where the schema document lives, how the HTTP server
// listens, and how logging behaves. Configuration loads from a YAML file
// over built-in defaults and is validated before use.
package config
