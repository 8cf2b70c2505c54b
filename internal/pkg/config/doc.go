// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by NEIC_* environment variables
// (optionally sourced from a .env file), validated, and handed to the rest of the
// application as plain structs.
package config
