// Package config loads the study-planner server configuration from
// environment variables, command-line flags, and an optional JSON file,
// merges them in that order of precedence, and applies defaults and
// validation to the result.
package config
