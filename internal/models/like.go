package models

import "time"

// Like targets a tweet or a comment, whichever FK is set. There is no
// uniqueness constraint on (owner, target); the toggle handler is the
// only thing keeping duplicates out, so concurrent identical requests
// can double-insert.
type Like struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OwnerID   uint     `gorm:"not null" json:"owner_id"`
	Owner     User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	TweetID   *uint    `json:"tweet_id,omitempty"`
	Tweet     *Tweet   `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"-"`
	CommentID *uint    `json:"comment_id,omitempty"`
	Comment   *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type LikeRequest struct {
	TargetID uint `json:"target_id" binding:"required"`
}
