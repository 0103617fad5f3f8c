// SPDX-License-Identifier: MPL-2.0

// Package config loads wslrun configuration from a TOML file with
// environment-variable overrides, falling back to built-in defaults.
package config
