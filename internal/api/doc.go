// Package api exposes the HTTP surface of the service: the router,
// request handlers, trace middleware, and JSON response helpers.
package api
