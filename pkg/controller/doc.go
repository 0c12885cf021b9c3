// Package controller contains HTTP middlewares and helper handlers used by
// the API server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers plus OPTIONS preflight handling.
//   - WithLogger: request-scoped logger and request ID in the context, with
//     a structured access log per request.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller
