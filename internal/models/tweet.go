package models

import "time"

type Tweet struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Body    string `json:"body"`
	Tags    string `json:"tags"`
	OwnerID uint   `gorm:"not null" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTweetRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
	Tags  string `json:"tags"`
}
