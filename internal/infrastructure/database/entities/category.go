package entities

import "time"

// Category represents the persisted category record. The unique index on
// name backs the resolver's conditional insert.
type Category struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}
