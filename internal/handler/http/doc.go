// Package http implements the REST transport of the estate API.
//
// It wires the /users and /properties resources together with the health,
// version and metrics endpoints. Request tracing, access logging, metrics,
// rate limiting and response compression are handled by middleware before
// requests reach the service layer.
package http
