package internaldefs

import (
	goJWT "github.com/MrEthical07/goJWT"
)

// CounterDef binds a codec counter to its exported name.
type CounterDef struct {
	ID   goJWT.MetricID
	Name string
	Help string
}

// HistogramDef binds a codec histogram to its exported name.
type HistogramDef struct {
	ID   goJWT.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported codec counter in render order.
var CounterDefs = []CounterDef{
	{ID: goJWT.MetricEncodeSuccess, Name: "gojwt_encode_success_total", Help: "Tokens encoded."},
	{ID: goJWT.MetricEncodeFailure, Name: "gojwt_encode_failure_total", Help: "Encode calls rejected by configuration or serialization errors."},
	{ID: goJWT.MetricDecodeSuccess, Name: "gojwt_decode_success_total", Help: "Tokens decoded, verified when requested."},
	{ID: goJWT.MetricDecodeMalformed, Name: "gojwt_decode_malformed_total", Help: "Tokens rejected as structurally invalid."},
	{ID: goJWT.MetricDecodeSignatureInvalid, Name: "gojwt_decode_signature_invalid_total", Help: "Tokens rejected for a signature mismatch or missing alg."},
	{ID: goJWT.MetricDecodeExpired, Name: "gojwt_decode_expired_total", Help: "Tokens rejected because exp has passed."},
	{ID: goJWT.MetricDecodeUnsupportedAlgorithm, Name: "gojwt_decode_unsupported_algorithm_total", Help: "Tokens whose header names an unsupported algorithm."},
	{ID: goJWT.MetricDecodeSerializationFailure, Name: "gojwt_decode_serialization_failure_total", Help: "Payloads the serializer could not convert into the requested type."},
	{ID: goJWT.MetricDecodeConfigurationError, Name: "gojwt_decode_configuration_error_total", Help: "Decode calls rejected for an unusable key."},
}

// HistogramDefs lists every exported codec histogram.
var HistogramDefs = []HistogramDef{
	{ID: goJWT.MetricDecodeLatency, Name: "gojwt_decode_latency_seconds", Help: "Decode latency histogram."},
}

// HistogramBounds are the upper bounds, in seconds, of the codec histogram
// buckets in Prometheus le notation.
var HistogramBounds = []string{
	"0.00001",
	"0.000025",
	"0.00005",
	"0.0001",
	"0.00025",
	"0.0005",
	"0.001",
	"+Inf",
}

// HistogramBoundSuffix mirrors HistogramBounds in a form usable inside
// instrument names.
var HistogramBoundSuffix = []string{
	"0_00001",
	"0_000025",
	"0_00005",
	"0_0001",
	"0_00025",
	"0_0005",
	"0_001",
	"inf",
}

// NormalizeBuckets copies raw into a fixed array, zero-filling missing
// buckets and dropping extras.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
