// Package config loads the worldline binary's TOML configuration.
//
// Defaults are applied first, keys present in the file override them, the
// WORLDLINE_LOG_LEVEL environment variable overrides the log level, and the
// result is validated before use. A missing file is not an error.
package config
