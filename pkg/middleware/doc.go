// Package middleware provides HTTP middleware for the toastkit server.
//
// This package includes:
//   - OpenTelemetry tracing of every request
//   - Prometheus request metrics
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("toastkit")))
//
// The tracer uses the global OpenTelemetry tracer provider. Handlers read
// the span from the request context with trace.SpanFromContext, and a toast
// shown with toast.ShowContext(r.Context(), ...) becomes a child span.
//
// # Prometheus Metrics
//
//   - toastkit_http_requests_total: requests by route pattern, method and status
//   - toastkit_http_request_duration_seconds: request duration histogram
//
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
package middleware
