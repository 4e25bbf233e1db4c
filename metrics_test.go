package goJWT

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricEncodeSuccess)

	assert.Zero(t, m.Value(MetricEncodeSuccess))
	snap := m.Snapshot()
	assert.Empty(t, snap.Counters)
	assert.Empty(t, snap.Histograms)
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricDecodeSuccess)
	m.Observe(MetricDecodeLatency, time.Millisecond)

	assert.False(t, m.Enabled(), "nil metrics must report disabled")
	assert.False(t, m.LatencyEnabled(), "nil metrics must report disabled")
	assert.Zero(t, m.Value(MetricDecodeSuccess))
}

func TestMetricsEnabledIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricDecodeSuccess)
	m.Inc(MetricDecodeSuccess)
	m.Inc(MetricDecodeSuccess)

	assert.Equal(t, uint64(3), m.Value(MetricDecodeSuccess))
}

func TestMetricsOutOfRangeIgnored(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(metricIDCount)
	m.Inc(metricIDCount + 10)

	assert.Zero(t, m.Value(metricIDCount))
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.Inc(MetricDecodeSignatureInvalid)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(goroutines*perG), m.Value(MetricDecodeSignatureInvalid))
}

func TestMetricsHistogramBucketCorrectness(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})

	observations := []time.Duration{
		5 * time.Microsecond,
		25 * time.Microsecond,
		40 * time.Microsecond,
		100 * time.Microsecond,
		200 * time.Microsecond,
		500 * time.Microsecond,
		900 * time.Microsecond,
		3 * time.Millisecond,
	}

	for _, d := range observations {
		m.Observe(MetricDecodeLatency, d)
	}

	buckets := m.Snapshot().Histograms[MetricDecodeLatency]
	require.Len(t, buckets, 8)
	for i, v := range buckets {
		assert.Equal(t, uint64(1), v, "bucket %d", i)
	}
}

func TestMetricsObserveIgnoresCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Observe(MetricDecodeSuccess, time.Millisecond)

	snap := m.Snapshot()
	assert.NotContains(t, snap.Histograms, MetricDecodeSuccess, "counter ids must not carry histograms")
	assert.Zero(t, snap.Counters[MetricDecodeSuccess])
}

func TestMetricsSnapshotConsistency(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Inc(MetricEncodeSuccess)
	m.Inc(MetricDecodeExpired)
	m.Inc(MetricDecodeExpired)
	m.Observe(MetricDecodeLatency, 2*time.Microsecond)

	snap := m.Snapshot()

	assert.Equal(t, uint64(1), snap.Counters[MetricEncodeSuccess])
	assert.Equal(t, uint64(2), snap.Counters[MetricDecodeExpired])
	assert.NotContains(t, snap.Counters, MetricDecodeLatency, "latency id must not appear among counters")
	require.Len(t, snap.Histograms[MetricDecodeLatency], 8)
	assert.Equal(t, uint64(1), snap.Histograms[MetricDecodeLatency][0])
}

func TestMetricsHistogramsOffWithoutLatency(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Observe(MetricDecodeLatency, time.Microsecond)

	assert.NotContains(t, m.Snapshot().Histograms, MetricDecodeLatency)
}

func TestDecodeFailureMetricMapping(t *testing.T) {
	c := newTestCodec(t, StdJSON{})
	expired := forge(t, `{"typ":"JWT","alg":"HS256"}`, `{"exp":1}`, keyABC, HS256)
	unsupported := forge(t, `{"typ":"JWT","alg":"HS1024"}`, `{}`, keyABC, HS256)

	tests := []struct {
		name  string
		token string
		key   []byte
		want  MetricID
	}{
		{name: "malformed", token: "a.b", key: keyABC, want: MetricDecodeMalformed},
		{name: "bad signature", token: bobToken, key: []byte("XYZ"), want: MetricDecodeSignatureInvalid},
		{name: "expired", token: expired, key: keyABC, want: MetricDecodeExpired},
		{name: "unsupported algorithm", token: unsupported, key: keyABC, want: MetricDecodeUnsupportedAlgorithm},
		{name: "missing key", token: bobToken, key: nil, want: MetricDecodeConfigurationError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Decode(tc.token, tc.key, true)
			require.Error(t, err)
			assert.Equal(t, tc.want, decodeFailureMetric(err))
		})
	}
}
