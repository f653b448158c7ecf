// Package config loads and validates the stlkit configuration file.
//
// Configuration is TOML, looked up at ~/.config/stlkit/config.toml or a
// stlkit.toml in the working directory, and covers the STL output
// profile (disk format, character tables), per-subtitle presentation
// defaults, header metadata, the conversion catalog, and logging.
package config
