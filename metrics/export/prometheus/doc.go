// Package prometheus renders goJWT codec metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [goJWT.Codec] built with metrics enabled
// and exposes an [http.Handler]. Counter names are gojwt_*_total; the single
// histogram is gojwt_decode_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
//   - Mutate codec state.
package prometheus
