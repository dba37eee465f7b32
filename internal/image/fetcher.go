// Package image resolves product images asynchronously with per-item
// failure isolation.
package image

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/moodcart/shopping-assistant/pkg/clock"
)

// sizeSuffix is appended to every resolved URL so cards render at a fixed
// display size.
const sizeSuffix = "?w=400&h=400&fit=crop"

// Fetcher resolves a single product name to an image URL. The topic tag
// selects the fallback pool when no table entry matches.
type Fetcher interface {
	Fetch(ctx context.Context, name, topicTag string) (string, error)
}

// ErrFetchFailed simulates a transient image provider failure.
var ErrFetchFailed = errors.New("image fetch failed")

// StaticFetcher simulates an image API: a fixed name→URL table with
// bidirectional substring matching, per-topic fallback pools, and random
// latency per item. An optional failure rate models a flaky provider.
type StaticFetcher struct {
	clock       clock.Clock
	minLatency  time.Duration
	maxLatency  time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStaticFetcher creates a fetcher with the given simulated latency
// bounds and failure rate in [0,1).
func NewStaticFetcher(clk clock.Clock, minLatency, maxLatency time.Duration, failureRate float64) *StaticFetcher {
	return &StaticFetcher{
		clock:       clk,
		minLatency:  minLatency,
		maxLatency:  maxLatency,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch resolves one image URL. Lookup order: exact table key, substring
// in either direction over table keys, then a pseudo-random pick from the
// topic's fallback pool (global pool for unknown topics).
func (f *StaticFetcher) Fetch(ctx context.Context, name, topicTag string) (string, error) {
	latency, fail, pick := f.roll()
	if err := f.clock.Sleep(ctx, latency); err != nil {
		return "", err
	}
	if fail {
		return "", ErrFetchFailed
	}

	key := strings.ToLower(strings.TrimSpace(name))

	if url, ok := imageTable[key]; ok {
		return url + sizeSuffix, nil
	}

	for _, k := range imageKeys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return imageTable[k] + sizeSuffix, nil
		}
	}

	pool, ok := fallbackPools[topicTag]
	if !ok {
		pool = globalFallbackPool
	}
	return pool[pick%len(pool)] + sizeSuffix, nil
}

// roll draws latency, failure, and pool index under one lock so Fetch can
// run concurrently.
func (f *StaticFetcher) roll() (time.Duration, bool, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	latency := f.minLatency
	if span := f.maxLatency - f.minLatency; span > 0 {
		latency += time.Duration(f.rng.Int63n(int64(span)))
	}
	fail := f.failureRate > 0 && f.rng.Float64() < f.failureRate
	return latency, fail, f.rng.Intn(1 << 30)
}
