// Package app provides the orchestration layer for the Ladle application.
//
// # Overview
//
// This package wires together configuration, the Mealie client, polling,
// state management, and the UI to create the complete Ladle TUI experience.
// It serves as the composition root where all dependencies are initialized
// and connected.
//
// # Startup Sequence
//
//  1. Load Ladle configuration from ~/.config/ladle/config.toml
//  2. Load user preferences (theme)
//  3. Initialize the Mealie API client
//  4. Probe household support once, before any scoped call
//  5. Launch the background poller goroutine
//  6. Do one synchronous refresh so the UI starts populated
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Polling Behavior
//
// The poller runs continuously in the background (default: 30 seconds — meal
// plans change on a human cadence, not a machine one). Each poll fetches the
// server version, today's mealplans, recipes, shopping lists with their
// items, and statistics, then updates the shared state.Store atomically.
// Failures are logged and counted; the interval doubles per consecutive
// failure up to a five-minute cap so an unreachable server is not hammered.
//
// Fatal errors (returned from Run): unreadable configuration, client
// initialization failure. Poll failures are always recoverable; the UI shows
// an offline badge instead.
package app
