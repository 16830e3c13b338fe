// Package http implements the HTTP transport layer of the storefront.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, response compression and request
// timeouts are handled in this package before requests are delegated to the
// service layer. Every failure is rendered as {"error": "<message>"}.
package http
