// Package catalog maps free-text queries to item lists using per-topic
// keyword tables. Tables stand in for a real product database; matching is
// substring heuristics, not scored relevance.
package catalog

import (
	"fmt"
	"strings"
)

// KeywordEntry associates one lookup key with its item list. Entries are
// kept in a slice so scans follow table definition order.
type KeywordEntry struct {
	Key   string
	Items []string
}

// Topic is one selectable category or mood. It fixes the keyword table,
// price baseline, and scripted copy used for the rest of the turn.
type Topic struct {
	Tag            string
	Prompt         string
	ResubmitPrompt string
	EchoFmt        string
	DescriptionFmt string
	BasePrice      float64
	Keywords       []KeywordEntry
	Defaults       []string
}

// Echo renders the user-side message echoing this topic selection.
func (t *Topic) Echo() string {
	return fmt.Sprintf(t.EchoFmt, t.Tag)
}

// Describe renders the topic's product description for an item name.
func (t *Topic) Describe(name string) string {
	return fmt.Sprintf(t.DescriptionFmt, strings.ToLower(name))
}

// Taxonomy is an ordered set of topics with a designated fallback used when
// an unrecognized tag is supplied.
type Taxonomy struct {
	greeting string
	order    []string
	topics   map[string]*Topic
	fallback string
}

// NewTaxonomy builds a taxonomy from topics in the given order. The first
// topic is the fallback for unrecognized tags.
func NewTaxonomy(greeting string, topics ...*Topic) *Taxonomy {
	tax := &Taxonomy{greeting: greeting, topics: make(map[string]*Topic)}
	for _, t := range topics {
		tax.order = append(tax.order, t.Tag)
		tax.topics[t.Tag] = t
	}
	if len(topics) > 0 {
		tax.fallback = topics[0].Tag
	}
	return tax
}

// Get returns the topic for a tag.
func (x *Taxonomy) Get(tag string) (*Topic, bool) {
	t, ok := x.topics[strings.ToLower(strings.TrimSpace(tag))]
	return t, ok
}

// GetOrFallback returns the topic for a tag, or the fallback topic when the
// tag is unrecognized.
func (x *Taxonomy) GetOrFallback(tag string) *Topic {
	if t, ok := x.Get(tag); ok {
		return t
	}
	return x.topics[x.fallback]
}

// Greeting returns the scripted opening message for this topic set.
func (x *Taxonomy) Greeting() string {
	return x.greeting
}

// Tags returns topic tags in definition order.
func (x *Taxonomy) Tags() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// Topic set names selectable via configuration.
const (
	TopicSetCategories = "categories"
	TopicSetMoods      = "moods"
)

// Topics returns the taxonomy for a topic set name. Unknown names fall back
// to the category set.
func Topics(set string) *Taxonomy {
	if strings.ToLower(set) == TopicSetMoods {
		return moodTopics
	}
	return categoryTopics
}

var foodKeywords = []KeywordEntry{
	{Key: "pasta", Items: []string{"Pasta", "Tomatoes", "Garlic", "Olive oil", "Basil", "Parmesan cheese"}},
	{Key: "pizza", Items: []string{"Flour", "Yeast", "Tomatoes", "Mozzarella cheese", "Olive oil", "Basil"}},
	{Key: "burger", Items: []string{"Ground beef", "Buns", "Lettuce", "Tomato", "Onion", "Cheese", "Ketchup"}},
	{Key: "salad", Items: []string{"Lettuce", "Cucumber", "Tomato", "Bell pepper", "Avocado", "Olive oil"}},
	{Key: "curry", Items: []string{"Rice", "Chicken", "Curry powder", "Coconut milk", "Onion", "Garlic", "Ginger"}},
}

var foodDefaults = []string{"Flour", "Sugar", "Salt", "Olive oil", "Water", "Spices"}

var clothesKeywords = []KeywordEntry{
	{Key: "jeans", Items: []string{"Slim fit jeans", "Straight leg jeans", "Denim shorts", "Denim jacket", "Leather belt"}},
	{Key: "shirt", Items: []string{"Oxford shirt", "Flannel shirt", "Linen shirt", "Polo shirt", "Graphic tee"}},
	{Key: "jacket", Items: []string{"Denim jacket", "Bomber jacket", "Rain jacket", "Puffer jacket", "Blazer"}},
	{Key: "dress", Items: []string{"Summer dress", "Maxi dress", "Wrap dress", "Cocktail dress", "Cardigan"}},
	{Key: "sweater", Items: []string{"Wool sweater", "Cable knit sweater", "Turtleneck", "Hoodie", "Fleece pullover"}},
}

var clothesDefaults = []string{"Cotton t-shirt", "Classic jeans", "Light jacket", "Casual sneakers", "Wool socks", "Baseball cap"}

var shoesKeywords = []KeywordEntry{
	{Key: "sneakers", Items: []string{"Running sneakers", "High top sneakers", "Canvas sneakers", "Slip-on sneakers", "No-show socks"}},
	{Key: "boots", Items: []string{"Chelsea boots", "Hiking boots", "Leather boots", "Ankle boots", "Boot care kit"}},
	{Key: "sandals", Items: []string{"Flip flops", "Sport sandals", "Leather sandals", "Slide sandals", "Beach towel"}},
	{Key: "running shoes", Items: []string{"Trail running shoes", "Road running shoes", "Cushioned insoles", "Running socks", "Reflective laces"}},
	{Key: "loafers", Items: []string{"Penny loafers", "Suede loafers", "Driving moccasins", "Dress socks", "Shoe horn"}},
}

var shoesDefaults = []string{"Everyday sneakers", "Comfort insoles", "Cotton socks", "Shoe cleaner", "Waterproof spray", "Spare laces"}

var mobilesKeywords = []KeywordEntry{
	{Key: "iphone", Items: []string{"iPhone 15", "Silicone case", "MagSafe charger", "Screen protector", "Lightning cable"}},
	{Key: "android", Items: []string{"Galaxy S24", "Pixel 8", "Fast charger", "Clear case", "USB-C cable"}},
	{Key: "tablet", Items: []string{"10-inch tablet", "Tablet stand", "Stylus pen", "Keyboard folio", "Screen wipes"}},
	{Key: "budget phone", Items: []string{"Budget smartphone", "Prepaid SIM kit", "Basic case", "Wall charger", "Wired earbuds"}},
	{Key: "flagship", Items: []string{"Flagship smartphone", "Wireless earbuds", "Wireless charger", "Leather case", "Car mount"}},
}

var mobilesDefaults = []string{"Popular smartphone", "Protective case", "Screen protector", "Fast charger", "Power bank", "Bluetooth earbuds"}

var softwareKeywords = []KeywordEntry{
	{Key: "photo editor", Items: []string{"Photo editor pro", "Preset pack", "Cloud storage plan", "Drawing tablet", "Color calibration tool"}},
	{Key: "antivirus", Items: []string{"Antivirus suite", "VPN subscription", "Password manager", "Backup service", "Firewall tool"}},
	{Key: "office", Items: []string{"Office suite", "Note-taking app", "Calendar planner", "PDF editor", "Cloud storage plan"}},
	{Key: "game", Items: []string{"Adventure game", "Puzzle game", "Racing game", "Game controller", "Game gift card"}},
	{Key: "design", Items: []string{"Vector design app", "UI design kit", "Font bundle", "Stock photo plan", "Drawing tablet"}},
}

var softwareDefaults = []string{"Office suite", "Antivirus suite", "Photo editor", "Music player", "Cloud backup", "Utility bundle"}

var categoryTopics = NewTaxonomy(
	"Hello! What category are you interested in today?",
	&Topic{
		Tag:            "food",
		Prompt:         "Great! What specific food dish are you looking for?",
		ResubmitPrompt: "What other dish would you like to try? Tell me another food!",
		EchoFmt:        "I'm interested in %s",
		DescriptionFmt: "Fresh %s for your recipe.",
		BasePrice:      3.99,
		Keywords:       foodKeywords,
		Defaults:       foodDefaults,
	},
	&Topic{
		Tag:            "clothes",
		Prompt:         "Excellent! What type of clothing item are you looking for?",
		ResubmitPrompt: "What other clothing item would you like to see? Tell me another style!",
		EchoFmt:        "I'm interested in %s",
		DescriptionFmt: "Stylish %s to refresh your wardrobe.",
		BasePrice:      19.99,
		Keywords:       clothesKeywords,
		Defaults:       clothesDefaults,
	},
	&Topic{
		Tag:            "shoes",
		Prompt:         "Perfect! What style of shoes are you interested in?",
		ResubmitPrompt: "What other footwear would you like to check out? Tell me another style!",
		EchoFmt:        "I'm interested in %s",
		DescriptionFmt: "Comfortable %s for every occasion.",
		BasePrice:      39.99,
		Keywords:       shoesKeywords,
		Defaults:       shoesDefaults,
	},
	&Topic{
		Tag:            "mobiles",
		Prompt:         "Nice choice! What type of mobile device are you interested in?",
		ResubmitPrompt: "What other mobile device would you like to explore? Tell me another option!",
		EchoFmt:        "I'm interested in %s",
		DescriptionFmt: "Latest %s with cutting-edge features.",
		BasePrice:      299.99,
		Keywords:       mobilesKeywords,
		Defaults:       mobilesDefaults,
	},
	&Topic{
		Tag:            "software",
		Prompt:         "Great! What kind of software or application are you looking for?",
		ResubmitPrompt: "What other software would you like to discover? Tell me another application!",
		EchoFmt:        "I'm interested in %s",
		DescriptionFmt: "Powerful %s to boost your productivity.",
		BasePrice:      49.99,
		Keywords:       softwareKeywords,
		Defaults:       softwareDefaults,
	},
)

// Legacy mood taxonomy. Moods reuse the category keyword tables with
// mood-flavored copy, so the resolver and synthesizer need no branching.
var moodTopics = NewTaxonomy(
	"Hello! How are you feeling today?",
	&Topic{
		Tag:            "hungry",
		Prompt:         "Feeling hungry! What dish are you craving right now?",
		ResubmitPrompt: "What other dish would you like to try? Tell me another food!",
		EchoFmt:        "I'm feeling %s",
		DescriptionFmt: "Fresh %s for your recipe.",
		BasePrice:      3.99,
		Keywords:       foodKeywords,
		Defaults:       foodDefaults,
	},
	&Topic{
		Tag:            "happy",
		Prompt:         "Love the energy! What outfit would match your mood today?",
		ResubmitPrompt: "What other clothing item would you like to see? Tell me another style!",
		EchoFmt:        "I'm feeling %s",
		DescriptionFmt: "Stylish %s to refresh your wardrobe.",
		BasePrice:      19.99,
		Keywords:       clothesKeywords,
		Defaults:       clothesDefaults,
	},
	&Topic{
		Tag:            "sad",
		Prompt:         "Let's find some comfort food. What dish sounds good right now?",
		ResubmitPrompt: "What other dish would you like to try? Tell me another food!",
		EchoFmt:        "I'm feeling %s",
		DescriptionFmt: "Fresh %s for your recipe.",
		BasePrice:      3.99,
		Keywords:       foodKeywords,
		Defaults:       foodDefaults,
	},
	&Topic{
		Tag:            "energetic",
		Prompt:         "Let's keep you moving! What kind of shoes are you after?",
		ResubmitPrompt: "What other footwear would you like to check out? Tell me another style!",
		EchoFmt:        "I'm feeling %s",
		DescriptionFmt: "Comfortable %s for every occasion.",
		BasePrice:      39.99,
		Keywords:       shoesKeywords,
		Defaults:       shoesDefaults,
	},
	&Topic{
		Tag:            "relaxed",
		Prompt:         "Time to unwind. What kind of app or software are you in the mood for?",
		ResubmitPrompt: "What other software would you like to discover? Tell me another application!",
		EchoFmt:        "I'm feeling %s",
		DescriptionFmt: "Powerful %s to boost your productivity.",
		BasePrice:      49.99,
		Keywords:       softwareKeywords,
		Defaults:       softwareDefaults,
	},
)
