// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-non-zero-wins semantics in the order
// env → flags → JSON, then defaults are applied and the result is validated.
// The merged [StructuredConfig] is constructed once in main and injected
// into every component that needs it; nothing reads the environment after
// startup.
package config
