package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilythestrangee/twitter-clone/backend/internal/cache"
	"github.com/emilythestrangee/twitter-clone/backend/internal/metrics"
	"github.com/emilythestrangee/twitter-clone/backend/internal/middleware"
	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

const (
	defaultPageSize = 10

	// Cached entries live at most 5 minutes, and at most 2 minutes past
	// their last read. Entries are never invalidated on writes: a new
	// tweet shows up in a cached page only once that page expires.
	cacheAbsoluteTTL = 5 * time.Minute
	cacheSlidingTTL  = 2 * time.Minute
)

type TweetHandler struct {
	db      *gorm.DB
	cache   *cache.Cache
	metrics *metrics.Metrics
}

func NewTweetHandler(db *gorm.DB, store *cache.Cache, m *metrics.Metrics) *TweetHandler {
	return &TweetHandler{db: db, cache: store, metrics: m}
}

// TweetPage is the pagination envelope shared by both listing versions.
type TweetPage struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int64          `json:"total_pages"`
	Tweets     []models.Tweet `json:"tweets"`
}

// pageParams clamps the query parameters: anything below 1 falls back to
// page 1 / the default page size.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func totalPages(totalCount int64, pageSize int) int64 {
	return (totalCount + int64(pageSize) - 1) / int64(pageSize)
}

// CreateTweet creates a new tweet owned by the caller
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CreateTweetRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet := models.Tweet{
		Title:   input.Title,
		Body:    input.Body,
		Tags:    input.Tags,
		OwnerID: identity.UserID,
	}

	if err := h.db.Create(&tweet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tweet"})
		return
	}

	h.metrics.TweetsCreated.Inc()

	h.db.Preload("Owner").First(&tweet, tweet.ID)
	c.JSON(http.StatusCreated, tweet)
}

// GetTweetsV1 is the uncached listing, kept for old clients. Every call
// hits the database; results come back in natural insertion order.
func (h *TweetHandler) GetTweetsV1(c *gin.Context) {
	page, pageSize := pageParams(c)

	var totalCount int64
	if err := h.db.Model(&models.Tweet{}).Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tweets"})
		return
	}

	var tweets []models.Tweet
	if err := h.db.Preload("Owner").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&tweets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tweets"})
		return
	}
	if tweets == nil {
		tweets = []models.Tweet{}
	}

	c.Header("Deprecation", "true")
	c.Header("Link", `</api/v2/tweet>; rel="successor-version"`)
	c.Header("Warning", `299 - "this endpoint is deprecated, use /api/v2/tweet"`)

	c.JSON(http.StatusOK, TweetPage{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(totalCount, pageSize),
		Tweets:     tweets,
	})
}

// GetTweetsV2 is the cached listing. A cache hit returns the stored
// envelope verbatim without touching the database.
func (h *TweetHandler) GetTweetsV2(c *gin.Context) {
	page, pageSize := pageParams(c)
	key := fmt.Sprintf("tweets:page=%d:size=%d", page, pageSize)

	if cached, ok := h.cache.Get(key); ok {
		h.metrics.CacheHits.WithLabelValues("tweet_list").Inc()
		c.JSON(http.StatusOK, cached.(TweetPage))
		return
	}
	h.metrics.CacheMisses.WithLabelValues("tweet_list").Inc()

	var totalCount int64
	if err := h.db.Model(&models.Tweet{}).Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tweets"})
		return
	}

	var tweets []models.Tweet
	if err := h.db.Preload("Owner").Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&tweets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tweets"})
		return
	}
	if tweets == nil {
		tweets = []models.Tweet{}
	}

	response := TweetPage{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(totalCount, pageSize),
		Tweets:     tweets,
	}

	h.cache.Set(key, response, cacheAbsoluteTTL, cacheSlidingTTL)
	c.JSON(http.StatusOK, response)
}

// GetTweet returns a single tweet, cache-or-fetch keyed by id. The detail
// cache is independent of the list cache.
func (h *TweetHandler) GetTweet(c *gin.Context) {
	tweetID := c.Param("id")
	key := fmt.Sprintf("tweet:%s", tweetID)

	if cached, ok := h.cache.Get(key); ok {
		h.metrics.CacheHits.WithLabelValues("tweet_detail").Inc()
		c.JSON(http.StatusOK, cached.(models.Tweet))
		return
	}
	h.metrics.CacheMisses.WithLabelValues("tweet_detail").Inc()

	var tweet models.Tweet
	if err := h.db.Preload("Owner").First(&tweet, tweetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	h.cache.Set(key, tweet, cacheAbsoluteTTL, cacheSlidingTTL)
	c.JSON(http.StatusOK, tweet)
}
