// Package api contains the HTTP handlers, request and response models, and
// the mapping from service errors to HTTP status codes.
package api
