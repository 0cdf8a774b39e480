// Package config loads, validates and writes the aspect configuration file.
//
// The file lives at $XDG_CONFIG_HOME/aspect/config.yaml. It is validated
// against the embedded JSON schema before it is decoded, so that errors can
// point at the offending line.
package config
