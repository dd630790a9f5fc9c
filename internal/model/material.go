package model

import "time"

// Material is a read-only fraud awareness content item
type Material struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *string   `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
