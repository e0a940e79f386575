package models

import "time"

// Follow links two users. Both sides restrict deletion: a user with
// follow rows cannot be removed until those rows are.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null" json:"follower_id"`
	FollowingID uint      `gorm:"not null" json:"following_id"`
	Follower    User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:RESTRICT" json:"-"`
	Following   User      `gorm:"foreignKey:FollowingID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
