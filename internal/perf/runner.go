package perf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"minishop/internal/routing"
)

// Task is one request shape a worker can fire. Body, when set, is
// re-evaluated per request so payloads can vary.
type Task struct {
	Name     string
	Method   string
	Endpoint string
	Weight   int
	Body     func() any
}

type Result struct {
	Requests int64
	Errors   int64
	Hist     *hdrhistogram.Histogram
}

func (r *Result) Report(w io.Writer) {
	fmt.Fprintf(w, "requests=%d errors=%d\n", r.Requests, r.Errors)
	fmt.Fprintf(w, "latency_ms p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		float64(r.Hist.ValueAtQuantile(50))/1000,
		float64(r.Hist.ValueAtQuantile(95))/1000,
		float64(r.Hist.ValueAtQuantile(99))/1000,
		float64(r.Hist.Max())/1000)
}

// Run drives the weighted task mix against URLs resolved per endpoint,
// with `concurrency` workers until the duration elapses or ctx is
// cancelled. Latencies are recorded in microseconds.
func Run(ctx context.Context, client *http.Client, resolver *routing.Resolver, tasks []Task, concurrency int, duration time.Duration, logger *log.Logger) (*Result, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks to run")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	mix := expandWeights(tasks)
	hist := hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)
	var histMu sync.Mutex
	var requests, errs atomic.Int64

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	logger.Printf("loadgen: %d workers for %s against %s mode", concurrency, duration, resolver.Mode())

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; ; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				task := mix[i%len(mix)]
				start := time.Now()
				err := fire(ctx, client, resolver.URL(task.Endpoint), task)
				elapsed := time.Since(start).Microseconds()

				// a request cut off by the run deadline is shutdown,
				// not a failure
				if err != nil && ctx.Err() != nil {
					return
				}
				requests.Add(1)
				if err != nil {
					errs.Add(1)
					continue
				}
				histMu.Lock()
				_ = hist.RecordValue(elapsed)
				histMu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	return &Result{Requests: requests.Load(), Errors: errs.Load(), Hist: hist}, nil
}

func fire(ctx context.Context, client *http.Client, url string, task Task) error {
	var body io.Reader
	if task.Body != nil {
		raw, err := json.Marshal(task.Body())
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, task.Method, url, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: status %d", task.Method, url, resp.StatusCode)
	}
	return nil
}

func expandWeights(tasks []Task) []Task {
	var mix []Task
	for _, t := range tasks {
		w := t.Weight
		if w < 1 {
			w = 1
		}
		for i := 0; i < w; i++ {
			mix = append(mix, t)
		}
	}
	return mix
}
