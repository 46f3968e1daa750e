package requests

import "video-catalog-api/internal/domain/video"

// CreateVideoRequest represents the payload for creating a catalog entry.
// Field-level rules are enforced by the domain layer so clients always see
// the field name and the rule that failed.
type CreateVideoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Src         string  `json:"src"`
	Type        string  `json:"type"`
	Poster      *string `json:"poster"`
	Duration    *string `json:"duration"`
	Resolution  *string `json:"resolution"`
	Size        *int64  `json:"size"`
	Status      *string `json:"status"`
	Category    *string `json:"category"`
	UploadedBy  *int64  `json:"uploaded_by"`
}

// ToParams maps the request to domain create parameters.
func (r CreateVideoRequest) ToParams() video.CreateParams {
	return video.CreateParams{
		Title:       r.Title,
		Description: r.Description,
		Src:         r.Src,
		Type:        r.Type,
		Poster:      r.Poster,
		Duration:    r.Duration,
		Resolution:  r.Resolution,
		Size:        r.Size,
		Status:      toStatus(r.Status),
		Category:    r.Category,
		UploadedBy:  r.UploadedBy,
	}
}

// UpdateVideoRequest represents a partial update. Absent keys and explicit
// nulls both decode to nil and leave the stored value untouched.
type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Src         *string `json:"src"`
	Type        *string `json:"type"`
	Poster      *string `json:"poster"`
	Duration    *string `json:"duration"`
	Resolution  *string `json:"resolution"`
	Size        *int64  `json:"size"`
	Status      *string `json:"status"`
	Category    *string `json:"category"`
	UploadedBy  *int64  `json:"uploaded_by"`
}

// ToParams maps the request to domain update parameters.
func (r UpdateVideoRequest) ToParams() video.UpdateParams {
	return video.UpdateParams{
		Title:       r.Title,
		Description: r.Description,
		Src:         r.Src,
		Type:        r.Type,
		Poster:      r.Poster,
		Duration:    r.Duration,
		Resolution:  r.Resolution,
		Size:        r.Size,
		Status:      toStatus(r.Status),
		Category:    r.Category,
		UploadedBy:  r.UploadedBy,
	}
}

func toStatus(raw *string) *video.Status {
	if raw == nil {
		return nil
	}
	s := video.Status(*raw)
	return &s
}
