package models

// Observation is a free-text maintenance note attached to exactly one room.
// Observations are immutable after creation; there is no edit operation,
// only add and delete.
type Observation struct {
	ID     string `json:"id"`
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
	// Timestamp is the creation instant in Unix milliseconds
	Timestamp int64 `json:"timestamp"`
}
