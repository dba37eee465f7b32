package model

// ImageState tracks whether a product's image has been resolved.
type ImageState string

const (
	ImageStateLoading ImageState = "loading"
	ImageStateReady   ImageState = "ready"
)

// PlaceholderImageURL is shown while an image resolves, and retained when
// resolution fails.
const PlaceholderImageURL = "/placeholder.svg"

// Product is a synthesized recommendation record. A batch of products is
// created per accepted query and superseded wholesale by the next query.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image_url"`
	Category    string     `json:"category"`
	ImageState  ImageState `json:"image_state"`
}
