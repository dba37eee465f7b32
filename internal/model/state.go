package model

// Stage describes what input the dialogue currently expects. Exactly one
// stage is active at a time; it drives which input affordance the client
// enables.
type Stage string

const (
	StageAwaitingTopic Stage = "awaiting-category-or-mood"
	StageAwaitingQuery Stage = "awaiting-product-query"
	StageIdle          Stage = "idle"
)

// Snapshot is a read-only copy of a session's conversation state and its
// current product batch. Clients render snapshots and never mutate them.
type Snapshot struct {
	SessionID     string        `json:"session_id"`
	Messages      []ChatMessage `json:"messages"`
	Stage         Stage         `json:"stage"`
	IsResolving   bool          `json:"is_resolving"`
	SelectedTopic string        `json:"selected_topic,omitempty"`
	LastQuery     string        `json:"last_query,omitempty"`
	Products      []Product     `json:"products"`
}
