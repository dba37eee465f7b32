package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodcart/shopping-assistant/internal/catalog"
	"github.com/moodcart/shopping-assistant/internal/model"
)

func foodTopic(t *testing.T) *catalog.Topic {
	t.Helper()
	topic, ok := catalog.Topics(catalog.TopicSetCategories).Get("food")
	require.True(t, ok)
	return topic
}

func TestSynthesize(t *testing.T) {
	topic := foodTopic(t)
	items := []string{"Pasta", "Tomatoes", "Garlic"}

	products := Synthesize(items, topic)
	require.Len(t, products, 3)

	for i, p := range products {
		assert.Equal(t, items[i], p.Name)
		assert.Equal(t, "food", p.Category)
		assert.Equal(t, model.PlaceholderImageURL, p.ImageURL)
		assert.Equal(t, model.ImageStateLoading, p.ImageState)
		assert.NotEmpty(t, p.ID)
	}

	assert.Equal(t, "Fresh pasta for your recipe.", products[0].Description)
	assert.Equal(t, "Fresh tomatoes for your recipe.", products[1].Description)
}

func TestSynthesizePriceLadder(t *testing.T) {
	topic := foodTopic(t)
	items := []string{"A", "B", "C", "D", "E", "F"}

	products := Synthesize(items, topic)
	require.Len(t, products, 6)

	for i, p := range products {
		assert.InDelta(t, topic.BasePrice+float64(i)*0.5, p.Price, 0.001, "position %d", i)
	}
	assert.Equal(t, 3.99, products[0].Price)
	assert.Equal(t, 6.49, products[5].Price)
}

func TestSynthesizeUniqueIDs(t *testing.T) {
	topic := foodTopic(t)
	items := []string{"Pasta", "Pasta", "Pasta"}

	products := Synthesize(items, topic)
	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	products := Synthesize(nil, foodTopic(t))
	assert.Empty(t, products)
}
