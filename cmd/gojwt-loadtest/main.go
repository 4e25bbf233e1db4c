package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/MrEthical07/goJWT/metrics/export/prometheus"
)

func main() {
	var (
		tokens      = flag.Int("tokens", 10000, "number of distinct tokens to pre-encode for the decode phase")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (encode + decode)")
		algName     = flag.String("alg", "HS256", "signing algorithm: HS256, HS384 or HS512")
		serializer  = flag.String("serializer", "std", "JSON serializer: std or gojson")
		metrics     = flag.Bool("metrics", false, "enable codec metrics and print them in Prometheus format")
	)
	flag.Parse()

	if *tokens <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "tokens, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	alg, err := goJWT.ParseAlgorithm(*algName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -alg: %v\n", err)
		os.Exit(2)
	}

	var s goJWT.Serializer
	switch *serializer {
	case "std":
		s = goJWT.StdJSON{}
	case "gojson":
		s = goJWT.GoJSON{}
	default:
		fmt.Fprintf(os.Stderr, "invalid -serializer %q: want std or gojson\n", *serializer)
		os.Exit(2)
	}

	codec, err := goJWT.New().
		WithSerializer(s).
		WithMetricsEnabled(*metrics).
		WithLatencyHistograms(*metrics).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build codec: %v\n", err)
		os.Exit(1)
	}

	key, err := goJWT.GenerateKey(alg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate key: %v\n", err)
		os.Exit(1)
	}

	pool := make([]string, *tokens)
	fmt.Printf("encoding %d tokens with %s/%s...\n", *tokens, alg, *serializer)
	startSeed := time.Now()
	for i := range pool {
		tok, err := codec.Encode(buildClaims(codec, i), key, alg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
			os.Exit(1)
		}
		pool[i] = tok
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	encodeStats := runPhase(*ops, *concurrency, 7919, func(i int, _ *rand.Rand) error {
		_, err := codec.Encode(buildClaims(codec, i), key, alg)
		return err
	})
	decodeStats := runPhase(*ops, *concurrency, 6151, func(_ int, r *rand.Rand) error {
		_, err := codec.DecodeToMap(pool[r.Intn(len(pool))], key, true)
		return err
	})

	fmt.Println("---- results ----")
	printStats("encode", encodeStats)
	printStats("decode", decodeStats)

	if *metrics {
		fmt.Println("---- metrics ----")
		fmt.Print(prometheus.NewPrometheusExporter(codec).Render())
	}
}

// runPhase spreads ops calls of op across concurrency workers and records
// per-call latency.
func runPhase(ops, concurrency int, seed int64, op func(i int, r *rand.Rand) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*seed))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				err := op(i, r)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Microsecond),
		s.opsPerS,
		s.p50.Round(time.Nanosecond),
		s.p95.Round(time.Nanosecond),
		s.p99.Round(time.Nanosecond),
	)
}

func buildClaims(codec *goJWT.Codec, i int) map[string]any {
	claims := codec.NewClaims(time.Hour)
	claims["sub"] = fmt.Sprintf("user-%d", i)
	claims["tenant"] = i % 16
	claims["role"] = "member"
	return claims
}
