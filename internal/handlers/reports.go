package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilythestrangee/twitter-clone/backend/internal/middleware"
	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// CreateReport files a moderation report against a tweet
func (h *ReportHandler) CreateReport(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CreateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tweet models.Tweet
	if err := h.db.First(&tweet, input.TweetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	report := models.Report{
		Title:   input.Title,
		Content: input.Content,
		TweetID: tweet.ID,
		OwnerID: identity.UserID,
	}

	if err := h.db.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetAllReports lists every report (admin only, enforced by route policy)
func (h *ReportHandler) GetAllReports(c *gin.Context) {
	var reports []models.Report
	if err := h.db.Order("created_at desc").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}

	c.JSON(http.StatusOK, reports)
}

// MarkAsSolved flips a report's solved flag to true. The flip is one-way
// and idempotent: solving an already-solved report is still a 200.
func (h *ReportHandler) MarkAsSolved(c *gin.Context) {
	reportID := c.Param("id")

	var report models.Report
	if err := h.db.First(&report, reportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	report.IsSolved = true
	if err := h.db.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
