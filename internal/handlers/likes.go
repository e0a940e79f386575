package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilythestrangee/twitter-clone/backend/internal/middleware"
	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

type LikeHandler struct {
	db *gorm.DB
}

func NewLikeHandler(db *gorm.DB) *LikeHandler {
	return &LikeHandler{db: db}
}

// LikeTweet toggles the caller's like on a tweet: an existing like is
// removed, a missing one is inserted. There is no separate unlike route.
// Concurrent identical requests can both observe "absent" and
// double-insert; there is no uniqueness constraint backing this up.
func (h *LikeHandler) LikeTweet(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.LikeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tweet models.Tweet
	if err := h.db.First(&tweet, input.TargetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	var existing models.Like
	err := h.db.Where("owner_id = ? AND tweet_id = ?", identity.UserID, tweet.ID).First(&existing).Error
	if err == nil {
		if err := h.db.Delete(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Tweet unliked"})
		return
	}

	like := models.Like{OwnerID: identity.UserID, TweetID: &tweet.ID}
	if err := h.db.Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tweet liked"})
}

// LikeComment toggles the caller's like on a comment.
func (h *LikeHandler) LikeComment(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.LikeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var comment models.Comment
	if err := h.db.First(&comment, input.TargetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var existing models.Like
	err := h.db.Where("owner_id = ? AND comment_id = ?", identity.UserID, comment.ID).First(&existing).Error
	if err == nil {
		if err := h.db.Delete(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment unliked"})
		return
	}

	like := models.Like{OwnerID: identity.UserID, CommentID: &comment.ID}
	if err := h.db.Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment liked"})
}
