// Package config handles loading and parsing Ladle configuration files.
//
// # Overview
//
// This package reads Ladle's TOML configuration to discover the Mealie
// server address, the API token, and the request deadline. The token can
// also arrive through the environment so it never has to be written to disk
// in plain TOML.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ladle/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. A .env file next to the config, plus the MEALIE_URL and MEALIE_TOKEN
//     environment variables, override whatever the file said
//
// # Default Values
//
//   - Config file: ~/.config/ladle/config.toml
//   - Server URL: http://127.0.0.1:9925
//   - Token: none (unauthenticated requests)
//   - Timeout: 10 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	url = "https://mealie.example.com"
//	token = "eyJhbGciOi..."
//	timeout_seconds = 10
//
// All fields are optional. Tilde expansion is performed on the config path.
//
// Missing config files are NOT an error - defaults are used instead. This
// allows Ladle to work out-of-the-box against a local Mealie container.
package config
