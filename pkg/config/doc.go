// Package config loads relines settings from layered TOML (or YAML)
// files and RELINES_* environment variables.
package config
