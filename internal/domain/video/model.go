// Package video defines the catalog entry domain: the video model, the
// validation rules for create and partial-update payloads, and the listing
// filter the gallery front end drives.
package video

import "time"

// Status is the lifecycle state of a catalog entry. There are no automatic
// transitions; every state is reachable from any other via an update.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the enumerated values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return true
	}
	return false
}

// Video is a catalog entry. CategoryName and UploadedByUsername are join
// projections filled by the repository; they are never written directly.
type Video struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	Src                string    `json:"src"`
	Type               string    `json:"type"`
	Poster             *string   `json:"poster,omitempty"`
	Duration           *string   `json:"duration,omitempty"`
	Resolution         *string   `json:"resolution,omitempty"`
	Size               *int64    `json:"size,omitempty"`
	Status             Status    `json:"status"`
	CategoryID         *int64    `json:"category_id,omitempty"`
	UploadedBy         *int64    `json:"uploaded_by,omitempty"`
	CategoryName       *string   `json:"category_name,omitempty"`
	UploadedByUsername *string   `json:"uploaded_by_username,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
