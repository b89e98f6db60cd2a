// Package handler serves markup over HTTP.
//
// Handler renders one markup.Markup straight into the http.ResponseWriter.
// NewRouter mounts a Registry of named pages on a chi router for previewing:
//
//	GET /                 index of registered pages
//	GET /pages/{name}     the page as text/html
//	GET /live/{name}      the page as a single websocket text message
//	GET /metrics          Prometheus metrics (when configured)
package handler
