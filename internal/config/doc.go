// Package config provides the configuration for a homophones run: input
// word lists, output destinations, and the dictionary lookup settings.
// Values come from defaults, an optional YAML file, and CLI flags, in that
// order of increasing precedence.
package config
