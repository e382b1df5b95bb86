package model

import "time"

// Item is a single lost or found report. Items are created once through the
// intake pipeline and are never updated or deleted afterwards.
type Item struct {
	ID          int64     `json:"id"`
	ItemType    string    `json:"item_type"`
	ItemName    string    `json:"item_name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	ContactInfo string    `json:"contact_info"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item types.
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// ValidItemType reports whether t is one of the two allowed item types.
func ValidItemType(t string) bool {
	return t == ItemTypeLost || t == ItemTypeFound
}
