// Package product turns resolved item names into priced product records.
package product

import (
	"math"

	"github.com/google/uuid"

	"github.com/moodcart/shopping-assistant/internal/catalog"
	"github.com/moodcart/shopping-assistant/internal/model"
)

// Synthesize builds one product per item name, in order. Price starts at
// the topic's base price and increases by 0.5 per position, rounded to
// cents. Every product starts with a placeholder image in the loading
// state. Pure and total.
func Synthesize(items []string, topic *catalog.Topic) []model.Product {
	products := make([]model.Product, len(items))
	for i, name := range items {
		products[i] = model.Product{
			ID:          uuid.Must(uuid.NewV7()).String(),
			Name:        name,
			Description: topic.Describe(name),
			Price:       roundCents(topic.BasePrice + float64(i)*0.5),
			ImageURL:    model.PlaceholderImageURL,
			Category:    topic.Tag,
			ImageState:  model.ImageStateLoading,
		}
	}
	return products
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
