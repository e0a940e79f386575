package models

import "time"

type Report struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	IsSolved bool   `gorm:"not null;default:false" json:"is_solved"`
	TweetID  uint   `gorm:"not null" json:"tweet_id"`
	Tweet    Tweet  `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"-"`
	OwnerID  uint   `gorm:"not null" json:"owner_id"`
	Owner    User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReportRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	TweetID uint   `json:"tweet_id" binding:"required"`
}
