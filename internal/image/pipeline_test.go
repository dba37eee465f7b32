package image

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/pkg/clock"
	"github.com/moodcart/shopping-assistant/pkg/logger"
)

// stubFetcher returns a deterministic URL per name and fails names listed
// in fail.
type stubFetcher struct {
	fail map[string]bool
}

func (f *stubFetcher) Fetch(_ context.Context, name, _ string) (string, error) {
	if f.fail[name] {
		return "", errors.New("provider unavailable")
	}
	return "https://img.test/" + strings.ToLower(name), nil
}

func placeholderBatch(names ...string) []model.Product {
	out := make([]model.Product, len(names))
	for i, n := range names {
		out[i] = model.Product{
			ID:         n + "-id",
			Name:       n,
			ImageURL:   model.PlaceholderImageURL,
			ImageState: model.ImageStateLoading,
		}
	}
	return out
}

func TestEnrichAllSucceed(t *testing.T) {
	p := NewPipeline(&stubFetcher{}, 4, logger.NewNop())
	in := placeholderBatch("Pasta", "Tomatoes", "Garlic")

	out, failed := p.Enrich(context.Background(), in, "food")
	require.Len(t, out, 3)
	assert.Zero(t, failed)

	for i, got := range out {
		assert.Equal(t, in[i].ID, got.ID, "order preserved")
		assert.Equal(t, model.ImageStateReady, got.ImageState)
		assert.Equal(t, "https://img.test/"+strings.ToLower(in[i].Name), got.ImageURL)
	}

	// Input batch is untouched.
	for _, p := range in {
		assert.Equal(t, model.ImageStateLoading, p.ImageState)
		assert.Equal(t, model.PlaceholderImageURL, p.ImageURL)
	}
}

func TestEnrichPartialFailure(t *testing.T) {
	p := NewPipeline(&stubFetcher{fail: map[string]bool{"Garlic": true}}, 4, logger.NewNop())
	in := placeholderBatch("Pasta", "Garlic", "Basil")

	out, failed := p.Enrich(context.Background(), in, "food")
	require.Len(t, out, 3)
	assert.Equal(t, 1, failed)

	assert.Equal(t, "https://img.test/pasta", out[0].ImageURL)
	assert.Equal(t, model.PlaceholderImageURL, out[1].ImageURL, "failed item keeps placeholder")
	assert.Equal(t, model.ImageStateReady, out[1].ImageState, "failed item still settles")
	assert.Equal(t, "https://img.test/basil", out[2].ImageURL)
}

func TestEnrichAllFail(t *testing.T) {
	fail := map[string]bool{"A": true, "B": true}
	p := NewPipeline(&stubFetcher{fail: fail}, 2, logger.NewNop())

	out, failed := p.Enrich(context.Background(), placeholderBatch("A", "B"), "food")
	assert.Equal(t, 2, failed)
	for _, got := range out {
		assert.Equal(t, model.PlaceholderImageURL, got.ImageURL)
		assert.Equal(t, model.ImageStateReady, got.ImageState)
	}
}

func TestEnrichEmptyBatch(t *testing.T) {
	p := NewPipeline(&stubFetcher{}, 4, logger.NewNop())
	out, failed := p.Enrich(context.Background(), nil, "food")
	assert.Empty(t, out)
	assert.Zero(t, failed)
}

func newInstantFetcher(failureRate float64) *StaticFetcher {
	return NewStaticFetcher(clock.NewFake(time.Unix(0, 0)), 0, 0, failureRate)
}

func TestStaticFetcherTableHit(t *testing.T) {
	f := newInstantFetcher(0)

	url, err := f.Fetch(context.Background(), "Pasta", "food")
	require.NoError(t, err)
	assert.Equal(t, "https://images.unsplash.com/photo-1551183053-bf91a1d81141"+sizeSuffix, url)
}

func TestStaticFetcherSubstringHit(t *testing.T) {
	f := newInstantFetcher(0)

	// "slim fit jeans" contains table key "jeans".
	url, err := f.Fetch(context.Background(), "Slim fit jeans", "clothes")
	require.NoError(t, err)
	assert.Equal(t, imageTable["jeans"]+sizeSuffix, url)
}

func TestStaticFetcherFallbackPool(t *testing.T) {
	f := newInstantFetcher(0)

	t.Run("known topic", func(t *testing.T) {
		url, err := f.Fetch(context.Background(), "zzz unmatched", "shoes")
		require.NoError(t, err)
		base := strings.TrimSuffix(url, sizeSuffix)
		assert.Contains(t, fallbackPools["shoes"], base)
	})

	t.Run("unknown topic", func(t *testing.T) {
		url, err := f.Fetch(context.Background(), "zzz unmatched", "gadgets")
		require.NoError(t, err)
		base := strings.TrimSuffix(url, sizeSuffix)
		assert.Contains(t, globalFallbackPool, base)
	})
}

func TestStaticFetcherAlwaysFails(t *testing.T) {
	f := newInstantFetcher(1)

	_, err := f.Fetch(context.Background(), "Pasta", "food")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestImageKeysCoverTable(t *testing.T) {
	require.Len(t, imageKeys, len(imageTable))
	for _, k := range imageKeys {
		_, ok := imageTable[k]
		assert.True(t, ok, "key %q missing from table", k)
	}
}
