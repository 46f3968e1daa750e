// Package webhook pushes catalog-change notifications to an optional
// external endpoint.
package webhook

// Event identifies the catalog change being announced.
type Event string

const (
	EventVideoCreated Event = "video.created"
	EventVideoUpdated Event = "video.updated"
	EventVideoDeleted Event = "video.deleted"
)

// Notifier delivers catalog-change notifications. Implementations must not
// block the calling request.
type Notifier interface {
	NotifyVideoEvent(event Event, videoID int64, title string)
}
