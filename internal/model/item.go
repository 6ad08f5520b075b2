package model

// Item is the domain model for a shopping-list entry.
// Kept minimal on purpose; it’s easy to evolve.
// ID is attached when items are seeded; nothing else reads it.
type Item struct {
	ID          int    `json:"id,omitempty"`
	Description string `json:"description"`
}
