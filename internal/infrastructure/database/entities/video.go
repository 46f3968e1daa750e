package entities

import "time"

// Video represents the persisted catalog entry.
type Video struct {
	ID          int64   `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Description *string `gorm:"type:text"`
	Src         string  `gorm:"size:500;not null"`
	Type        string  `gorm:"size:100;not null"`
	Poster      *string `gorm:"size:500"`
	Duration    *string `gorm:"size:8"`
	Resolution  *string `gorm:"size:50"`
	Size        *int64
	Status      string    `gorm:"size:20;not null;default:active"`
	CategoryID  *int64    `gorm:"index"`
	Category    *Category `gorm:"foreignKey:CategoryID"`
	UploadedBy  *int64    `gorm:"index"`
	Uploader    *User     `gorm:"foreignKey:UploadedBy"`
	CreatedAt   time.Time `gorm:"index:idx_videos_created_at,sort:desc"`
	UpdatedAt   time.Time
}

func (Video) TableName() string {
	return "videos"
}
