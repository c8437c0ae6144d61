package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a task as the record store persists it. The store knows nothing
// about task structure; everything beyond title and completion lives in
// Description.
type Record struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted Flag   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
}

// RecordInput is the body sent on create and update.
type RecordInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted Flag   `json:"is_completed"`
}

// Flag is the store's completion marker. It is read from either a number
// or a boolean and always written as 0 or 1.
type Flag bool

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*f = true
		return nil
	case "false", "null":
		*f = false
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("is_completed: expected number or boolean, got %s", data)
	}
	*f = n != 0
	return nil
}
