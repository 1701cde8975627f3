package music

// MediaType is a closed reference vocabulary row. Tracks cannot be created
// while the vocabulary is empty.
type MediaType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
