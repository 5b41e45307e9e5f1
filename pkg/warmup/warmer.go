package warmup

import (
	"context"
	"sync"
	"time"

	"github.com/aivault/profile-client/pkg/client"
	"github.com/rs/zerolog/log"
)

// Config holds warmer configuration.
type Config struct {
	// MaxConcurrency is the maximum number of parallel fetches.
	MaxConcurrency int
	// Timeout per target fetch.
	Timeout time.Duration
}

// DefaultConfig returns safe default configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 4,
		Timeout:        10 * time.Second,
	}
}

// Fetcher is the read operation a Warmer drives. The caching client
// satisfies it; a successful fetch leaves the response in the store.
type Fetcher interface {
	Get(ctx context.Context, kind client.Kind, path string, out any) (bool, error)
}

// Target identifies one resource to warm.
type Target struct {
	Kind client.Kind
	Path string
}

// Result records the outcome of warming a single target.
type Result struct {
	Target Target
	Found  bool
	Err    error
}

// Warmer fetches a set of targets in parallel through a caching client.
type Warmer struct {
	fetcher Fetcher
	config  Config
}

// New creates a warmer over fetcher.
func New(fetcher Fetcher, config Config) *Warmer {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 4
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}

	return &Warmer{
		fetcher: fetcher,
		config:  config,
	}
}

// Warm fetches every target through the worker pool. Individual failures
// are logged and skipped; the returned count is the number of targets that
// ended up cached. Warm returns early only when ctx is cancelled.
func (w *Warmer) Warm(ctx context.Context, targets []Target) (int, error) {
	start := time.Now()

	log.Info().
		Int("targets", len(targets)).
		Int("max_concurrency", w.config.MaxConcurrency).
		Msg("Starting cache warmup")

	queue := make(chan Target, len(targets))
	results := make(chan Result, len(targets))

	for _, target := range targets {
		queue <- target
	}
	close(queue)

	var wg sync.WaitGroup
	for i := 0; i < w.config.MaxConcurrency; i++ {
		wg.Add(1)
		go w.worker(ctx, queue, results, &wg, i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	warmed := 0
	for result := range results {
		if result.Err != nil {
			log.Warn().
				Err(result.Err).
				Str("kind", string(result.Target.Kind)).
				Str("path", result.Target.Path).
				Msg("Warmup fetch failed")
			continue
		}
		if result.Found {
			warmed++
		}
	}

	log.Info().
		Int("warmed", warmed).
		Int("targets", len(targets)).
		Dur("duration", time.Since(start)).
		Msg("Cache warmup complete")

	if err := ctx.Err(); err != nil {
		return warmed, err
	}
	return warmed, nil
}

// worker processes targets from the queue.
func (w *Warmer) worker(ctx context.Context, queue <-chan Target, results chan<- Result, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()
	processed := 0

	for target := range queue {
		select {
		case <-ctx.Done():
			log.Debug().
				Int("worker_id", workerID).
				Int("processed", processed).
				Msg("Warmup worker stopping (context cancelled)")
			return
		default:
		}

		fetchCtx, cancel := context.WithTimeout(ctx, w.config.Timeout)
		found, err := w.fetcher.Get(fetchCtx, target.Kind, target.Path, nil)
		cancel()

		results <- Result{Target: target, Found: found, Err: err}
		processed++
	}

	if processed > 0 {
		log.Debug().
			Int("worker_id", workerID).
			Int("processed", processed).
			Msg("Warmup worker completed")
	}
}

// BusinessTargets returns the warm set for one business's dashboard: the
// profile itself, the public directory and the first page of each
// business-scoped list.
func BusinessTargets(businessID string) []Target {
	listQuery := "?business_id=" + businessID + "&limit=10&offset=0"
	return []Target{
		{Kind: client.KindBusiness, Path: "/business/" + businessID},
		{Kind: client.KindDirectory, Path: "/business/directory-view"},
		{Kind: client.KindService, Path: "/services/" + listQuery},
		{Kind: client.KindCoupon, Path: "/coupons/" + listQuery},
		{Kind: client.KindMedia, Path: "/media/" + listQuery},
		{Kind: client.KindOperationalInfo, Path: "/operational-info/by-business/" + businessID},
	}
}
