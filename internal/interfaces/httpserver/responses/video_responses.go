package responses

import (
	"time"

	"video-catalog-api/internal/domain/video"
)

// VideoResponse is the externally visible projection of a catalog entry.
// category_name and uploaded_by_username come from the outer joins and are
// null for uncategorized or uploader-less rows.
type VideoResponse struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        *string   `json:"description"`
	Src                string    `json:"src"`
	Type               string    `json:"type"`
	Poster             *string   `json:"poster"`
	Duration           *string   `json:"duration"`
	Resolution         *string   `json:"resolution"`
	Size               *int64    `json:"size"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	CategoryName       *string   `json:"category_name"`
	UploadedByUsername *string   `json:"uploaded_by_username"`
}

// MapVideoToResponse projects a domain video into the response shape.
func MapVideoToResponse(v *video.Video) VideoResponse {
	return VideoResponse{
		ID:                 v.ID,
		Title:              v.Title,
		Description:        v.Description,
		Src:                v.Src,
		Type:               v.Type,
		Poster:             v.Poster,
		Duration:           v.Duration,
		Resolution:         v.Resolution,
		Size:               v.Size,
		Status:             v.Status.String(),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		CategoryName:       v.CategoryName,
		UploadedByUsername: v.UploadedByUsername,
	}
}

// VideoListResponse is the paginated listing envelope.
type VideoListResponse struct {
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Videos []VideoResponse `json:"videos"`
}

// MapVideoListToResponse projects one page of videos.
func MapVideoListToResponse(videos []*video.Video, total int64, page, limit int) VideoListResponse {
	items := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		items = append(items, MapVideoToResponse(v))
	}
	return VideoListResponse{
		Total:  total,
		Page:   page,
		Limit:  limit,
		Videos: items,
	}
}
