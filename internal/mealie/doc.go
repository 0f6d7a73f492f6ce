// Package mealie provides a typed HTTP client for the Mealie API.
//
// # Overview
//
// This package defines the API client for communicating with a self-hosted
// Mealie recipe and meal-planning server. It handles HTTP communication,
// JSON serialization, endpoint selection across server generations, and a
// typed error taxonomy for every failure class the API produces.
//
// # Architecture
//
// The package is split into four files:
//
//   - client.go: request pipeline, endpoint resolver, and one method per API operation
//   - types.go: data structures mirroring the Mealie API schema
//   - errors.go: the closed error taxonomy
//   - version.go: server-version gate for the recipe import endpoint
//
// # Client Usage
//
// Create a client using the server address from configuration:
//
//	client, err := mealie.NewClient("demo.mealie.io", mealie.Options{Token: token})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	defer client.Close()
//
//	// Detect the scoped-endpoint prefix once, up front.
//	client.DefineHouseholdSupport(ctx)
//
//	today, err := client.GetMealplanToday(ctx)
//	if err != nil {
//		log.Printf("mealplan fetch failed: %v", err)
//	}
//
// # Request Handling
//
// All requests flow through one chokepoint that:
//
//   - Joins the configured base URL with the operation path
//   - Sets User-Agent, Accept, and (when a token is configured) Authorization headers
//   - Applies a per-request deadline (10 seconds by default)
//   - Classifies 400/401/404/422 responses into the error taxonomy
//   - Rejects non-JSON bodies even on a 2xx status, since some deployments
//     serve HTML error pages with a 200
//
// Requests are never retried; every error is terminal for the call that
// produced it and the caller decides whether to try again.
//
// # Scoped Endpoints
//
// Mealplans, shopping data, and statistics live under api/groups/ on older
// servers and api/households/ on newer ones. DefineHouseholdSupport probes a
// household endpoint once and caches the answer for the client's lifetime;
// the client never probes implicitly, so callers should probe before relying
// on scoped operations. Recipe import additionally selects between the
// legacy create-url and current create/url endpoints by comparing the
// server's reported version against 2.0.0.
//
// # Session Ownership
//
// When no http.Client is supplied, the Client lazily creates one on first
// request and Close releases it. A supplied http.Client is never closed by
// this package: who created it, closes it.
//
// # Error Handling
//
// Every failure is reported as *Error. Match coarsely with errors.As, or
// precisely with the Kind field and the IsConnection/IsAuthentication/
// IsValidation/IsNotFound/IsBadRequest helpers. Generic errors carry the
// observed content type and raw body for debugging.
package mealie
