package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilythestrangee/twitter-clone/backend/internal/middleware"
	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// CreateComment attaches a top-level comment to a tweet. Only the tweet
// FK is ever populated here; replies go through CreateReply, so a comment
// can never end up with both parents or neither.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tweet models.Tweet
	if err := h.db.First(&tweet, input.TweetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	comment := models.Comment{
		Content: input.Content,
		OwnerID: identity.UserID,
		TweetID: &tweet.ID,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	h.db.Preload("Owner").First(&comment, comment.ID)
	c.JSON(http.StatusOK, comment)
}

// CreateReply attaches a threaded reply to an existing comment.
func (h *CommentHandler) CreateReply(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CreateReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var parent models.Comment
	if err := h.db.First(&parent, input.ParentCommentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	reply := models.Comment{
		Content:         input.Content,
		OwnerID:         identity.UserID,
		ParentCommentID: &parent.ID,
	}

	if err := h.db.Create(&reply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reply"})
		return
	}

	h.db.Preload("Owner").First(&reply, reply.ID)
	c.JSON(http.StatusOK, reply)
}

// GetTweetComments returns all top-level comments on a tweet
func (h *CommentHandler) GetTweetComments(c *gin.Context) {
	tweetID := c.Param("id")
	var comments []models.Comment

	if err := h.db.Where("tweet_id = ?", tweetID).Preload("Owner").Order("created_at desc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// GetReplies returns all replies to a comment
func (h *CommentHandler) GetReplies(c *gin.Context) {
	commentID := c.Param("id")
	var replies []models.Comment

	if err := h.db.Where("parent_comment_id = ?", commentID).Preload("Owner").Order("created_at desc").Find(&replies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replies"})
		return
	}
	if replies == nil {
		replies = []models.Comment{}
	}

	c.JSON(http.StatusOK, replies)
}
