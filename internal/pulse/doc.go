// Package pulse provides the HTTP client for the Neat Pulse API.
//
// The client wraps resty with bearer-token authentication, a fixed
// request timeout, and typed operations for the org-scoped resources:
//
//   - client.go: Client construction and the region/location/room calls
//   - envelope.go: normalization of the API's variable list shapes
//   - types.go: wire types for regions, locations and rooms
//   - errors.go: error taxonomy shared with the bulk pipeline
//
// Retry is deliberately not handled here; the bulk pipeline owns the
// backoff schedule and calls CreateRoom once per attempt.
package pulse
