package entities

import "time"

// User is owned by an external collaborator; the catalog only reads the
// username through the uploader join and never validates existence.
type User struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"size:100;not null"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
