package models

// Badge is a central achievement definition. Ids are upper-cased slugs
// derived from the name and unique at creation time. Users hold copies
// by value, so definition edits and deletions fan out to every holder.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // key into the presentation icon registry
	Color       string `json:"color"`
}
