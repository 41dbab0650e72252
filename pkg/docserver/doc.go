// Package docserver serves validator documentation over HTTP.
//
// Routes:
//
//	GET /validators                 names of the registered validators
//	GET /validators/{name}          documentation of one validator
//	GET /healthz                    liveness check
//
// The documentation route accepts deep=true to expand delegations and
// format=json|yaml|markdown|text|html (default json). The message language is
// negotiated from the lang query parameter, the lang cookie or the
// Accept-Language header. JSON responses use the envelope
// {"data": ..., "meta": ..., "error": {"code": ..., "message": ...}}.
package docserver
