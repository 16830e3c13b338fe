// Package config loads the storefront server configuration.
//
// Values are collected from three sources and merged with mergo, the first
// non-zero value winning:
//
//  1. environment variables (caarlos0/env);
//  2. command-line flags;
//  3. an optional JSON file named by CONFIG / -c / -config.
//
// Defaults fill whatever is still empty, and the result is validated before it
// is returned.
package config
