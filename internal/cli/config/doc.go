// Package config loads pulsectl configuration.
//
// It uses Koanf for flexible loading from multiple sources, later
// sources overriding earlier ones:
//
//  1. Built-in defaults
//  2. Optional YAML config file (~/.pulsectl/config.yaml)
//  3. .env file in the working directory
//  4. PULSE_* environment variables
//
// Command-line flags are applied on top by the command layer.
package config
