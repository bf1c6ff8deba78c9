// Package config loads, validates and normalizes strmsync configuration from
// a TOML file. All components receive an immutable *Config at construction;
// there is no mutable global state.
package config
