package models

import "time"

// Comment is either a top-level comment on a tweet (TweetID set) or a
// threaded reply to another comment (ParentCommentID set). Each creation
// route populates exactly one of the two, never both.
type Comment struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Content         string   `gorm:"not null" json:"content"`
	OwnerID         uint     `gorm:"not null" json:"owner_id"`
	Owner           User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner"`
	TweetID         *uint    `json:"tweet_id,omitempty"`
	Tweet           *Tweet   `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"-"`
	ParentCommentID *uint    `json:"parent_comment_id,omitempty"`
	ParentComment   *Comment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	TweetID uint   `json:"tweet_id" binding:"required"`
}

type CreateReplyRequest struct {
	Content         string `json:"content" binding:"required"`
	ParentCommentID uint   `json:"parent_comment_id" binding:"required"`
}
