// Package config loads, normalizes, and validates tunegrab configuration.
//
// Configuration is TOML, located at ~/.config/tunegrab/config.toml by
// default with a project-local tunegrab.toml fallback. Every path field in
// the loaded config is tilde-expanded and absolute.
package config
