// Package otel binds goJWT codec metrics to OpenTelemetry instruments.
//
// [NewOTelExporter] registers an Int64ObservableCounter per codec counter and
// an Int64ObservableGauge per histogram bucket. A single callback reads
// [goJWT.Codec.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate codec state.
package otel
