package image

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/pkg/logger"
	"github.com/moodcart/shopping-assistant/pkg/metrics"
)

// Pipeline resolves images for a product batch. Items resolve
// independently; a per-item failure keeps that item's placeholder and
// never fails the batch.
type Pipeline struct {
	fetcher     Fetcher
	concurrency int
	logger      *logger.Logger
}

// NewPipeline creates a pipeline with bounded per-batch concurrency.
func NewPipeline(fetcher Fetcher, concurrency int, log *logger.Logger) *Pipeline {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Pipeline{
		fetcher:     fetcher,
		concurrency: concurrency,
		logger:      log,
	}
}

// Enrich resolves an image for every product and returns a new batch in
// the original order, plus the number of items that fell back to the
// placeholder. Every returned product has image state ready. Enrich never
// returns an error: failures are absorbed at the item boundary.
func (p *Pipeline) Enrich(ctx context.Context, products []model.Product, topicTag string) ([]model.Product, int) {
	start := time.Now()

	out := make([]model.Product, len(products))
	copy(out, products)

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i := range out {
		i := i
		g.Go(func() error {
			url, err := p.fetcher.Fetch(ctx, out[i].Name, topicTag)
			if err != nil {
				failed.Add(1)
				p.logger.Warn("image resolution failed, keeping placeholder",
					zap.String("product", out[i].Name),
					zap.Error(err),
				)
				out[i].ImageState = model.ImageStateReady
				return nil
			}
			out[i].ImageURL = url
			out[i].ImageState = model.ImageStateReady
			return nil
		})
	}
	g.Wait()

	n := int(failed.Load())
	status := "success"
	if n > 0 {
		status = "partial"
	}
	metrics.RecordEnrichment(status, time.Since(start).Seconds(), n)

	return out, n
}
