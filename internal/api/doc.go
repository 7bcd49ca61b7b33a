// Package api contains the HTTP handlers, request/response models, and
// error mapping for the board and session endpoints. Handlers decode and
// validate requests, call into the service and store layers, and
// translate their errors into sanitized JSON responses.
package api
