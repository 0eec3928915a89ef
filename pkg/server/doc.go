// Package server mirrors a toast display surface to browsers.
//
// The server keeps the authoritative document on the Go side. A Hub
// observes document mutations and broadcasts them as JSON frames over
// WebSocket; connected browsers apply the frames to their own DOM and
// report back the signals only a browser can produce: clicks and the end
// of the exit animation.
//
// # Endpoints
//
//   - GET  /                      page with the rendered surface and client script
//   - GET  /static/toast.css      toast stylesheet
//   - GET  /ws                    WebSocket frames
//   - GET  /api/toasts            live toasts
//   - POST /api/toasts            show a toast
//   - DELETE /api/toasts/{id}     dismiss a toast
//   - GET  /api/defaults          current defaults
//   - PUT  /api/defaults          merge into defaults
//   - GET  /metrics               Prometheus metrics (when a Gatherer is set)
//
// # Example Usage
//
//	t := toast.New(toast.WithMetrics(toast.NewMetrics()))
//	srv := server.New(server.Config{Toaster: t, Gatherer: prometheus.DefaultGatherer})
//	err := srv.ListenAndServe(ctx, ":3100")
//
// # Thread Safety
//
// Frames are queued per client and written by a single goroutine per
// connection, so observers never block on the network.
package server
