package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/emilythestrangee/twitter-clone/backend/internal/auth"
	"github.com/emilythestrangee/twitter-clone/backend/internal/middleware"
	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

type UserHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func NewUserHandler(db *gorm.DB, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{db: db, tokens: tokens}
}

// Register handles user registration. Every new account gets the User
// role; the only Admin is seeded at bootstrap.
func (h *UserHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := h.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashedPassword),
		Bio:      input.Bio,
		Role:     models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// A concurrent register can win the window between the check
		// above and this insert; the unique-email constraint reports
		// that as a duplicate, not a server error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"bio":      user.Bio,
			"role":     user.Role,
		},
	})
}

// Login verifies credentials and returns a bearer token. The failure
// message is deliberately the same for an unknown email and a wrong
// password.
func (h *UserHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	tokenString, err := h.tokens.Issue(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// GetMe returns the current authenticated user
func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := h.db.First(&user, identity.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"bio":        user.Bio,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	})
}

// GetUserProfile returns a user's public profile
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID := c.Param("id")
	var user models.User

	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var tweets []models.Tweet
	h.db.Where("owner_id = ?", userID).Order("created_at desc").Find(&tweets)
	if tweets == nil {
		tweets = []models.Tweet{}
	}

	var followerCount, followingCount int64
	h.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&followerCount)
	h.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&followingCount)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"bio":      user.Bio,
		},
		"tweets":          tweets,
		"follower_count":  followerCount,
		"following_count": followingCount,
	})
}

// FollowUser follows a user
func (h *UserHandler) FollowUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	followingID := c.Param("id")
	var followingUser models.User
	if err := h.db.First(&followingUser, followingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if followingUser.ID == identity.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
		return
	}

	var existingFollow models.Follow
	err := h.db.Where("follower_id = ? AND following_id = ?", identity.UserID, followingUser.ID).First(&existingFollow).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already following this user"})
		return
	}

	follow := models.Follow{
		FollowerID:  identity.UserID,
		FollowingID: followingUser.ID,
	}

	if err := h.db.Create(&follow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully followed user"})
}

// UnfollowUser unfollows a user
func (h *UserHandler) UnfollowUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	followingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var follow models.Follow
	if err := h.db.Where("follower_id = ? AND following_id = ?", identity.UserID, followingID).First(&follow).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not following this user"})
		return
	}

	if err := h.db.Delete(&follow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed user"})
}

// GetFollowers returns a user's followers
func (h *UserHandler) GetFollowers(c *gin.Context) {
	userID := c.Param("id")
	var follows []models.Follow

	h.db.Where("following_id = ?", userID).Preload("Follower").Find(&follows)

	var followers []gin.H
	for _, follow := range follows {
		followers = append(followers, gin.H{
			"id":       follow.Follower.ID,
			"username": follow.Follower.Username,
		})
	}
	if followers == nil {
		followers = []gin.H{}
	}

	c.JSON(http.StatusOK, followers)
}

// GetFollowing returns users that a user is following
func (h *UserHandler) GetFollowing(c *gin.Context) {
	userID := c.Param("id")
	var follows []models.Follow

	h.db.Where("follower_id = ?", userID).Preload("Following").Find(&follows)

	var following []gin.H
	for _, follow := range follows {
		following = append(following, gin.H{
			"id":       follow.Following.ID,
			"username": follow.Following.Username,
		})
	}
	if following == nil {
		following = []gin.H{}
	}

	c.JSON(http.StatusOK, following)
}
