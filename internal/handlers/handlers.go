package handlers

import (
	"gorm.io/gorm"

	"github.com/emilythestrangee/twitter-clone/backend/internal/auth"
	"github.com/emilythestrangee/twitter-clone/backend/internal/cache"
	"github.com/emilythestrangee/twitter-clone/backend/internal/metrics"
)

// Handler combines all handler types
type Handler struct {
	User    *UserHandler
	Tweet   *TweetHandler
	Comment *CommentHandler
	Like    *LikeHandler
	Report  *ReportHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, store *cache.Cache, tokens *auth.TokenService, m *metrics.Metrics) *Handler {
	return &Handler{
		User:    NewUserHandler(db, tokens),
		Tweet:   NewTweetHandler(db, store, m),
		Comment: NewCommentHandler(db),
		Like:    NewLikeHandler(db),
		Report:  NewReportHandler(db),
	}
}
