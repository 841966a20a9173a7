package models

// Memory is a gallery photo. Reactions are aggregate counters keyed by
// emoji, not per-user sets: the same user may react repeatedly.
type Memory struct {
	ID         int64          `json:"id"`
	URL        string         `json:"url"`
	Thumbnail  string         `json:"thumbnail"`
	Semester   string         `json:"semester"`
	UploaderID int64          `json:"uploaderId"`
	Reactions  map[string]int `json:"reactions"`
	Status     ContentStatus  `json:"status"`
}

// Clone returns a deep copy of the memory
func (m *Memory) Clone() *Memory {
	if m == nil {
		return nil
	}
	c := *m
	c.Reactions = make(map[string]int, len(m.Reactions))
	for k, v := range m.Reactions {
		c.Reactions[k] = v
	}
	return &c
}
