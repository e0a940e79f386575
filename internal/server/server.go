package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/twitter-clone/backend/internal/auth"
	"github.com/emilythestrangee/twitter-clone/backend/internal/cache"
	"github.com/emilythestrangee/twitter-clone/backend/internal/database"
	"github.com/emilythestrangee/twitter-clone/backend/internal/handlers"
	"github.com/emilythestrangee/twitter-clone/backend/internal/metrics"
	"github.com/emilythestrangee/twitter-clone/backend/internal/middleware"
	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
	"github.com/emilythestrangee/twitter-clone/backend/internal/ratelimit"
)

const (
	cacheCapacity = 500

	tweetListLimit  = 3
	tweetListWindow = 10 * time.Second
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
	tokens  *auth.TokenService
	metrics *metrics.Metrics

	// One shared limiter for both tweet-listing generations.
	tweetListLimiter *ratelimit.Limiter
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "twitter-clone"
	}
	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "twitter-clone-api"
	}

	db := database.New()

	store, err := cache.New(cacheCapacity)
	if err != nil {
		log.Fatalf("Failed to create cache: %v", err)
	}

	tokens := auth.NewTokenService([]byte(secret), issuer, audience)
	m := metrics.New()
	handler := handlers.NewHandler(db.GetDB(), store, tokens, m)

	newServer := &Server{
		db:               db,
		handler:          handler,
		tokens:           tokens,
		metrics:          m,
		tweetListLimiter: ratelimit.NewLimiter(tweetListLimit, tweetListWindow),
	}

	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Deprecation", "Link", "Warning"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(s.metrics.Middleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", metrics.Handler())

	rateLimited := ratelimit.Middleware(s.tweetListLimiter)
	authRequired := middleware.RequireAuth(s.tokens)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		v1.POST("/user/register", s.handler.User.Register)
		v1.POST("/user/login", s.handler.User.Login)

		// Public reads
		v1.GET("/user/:id", s.handler.User.GetUserProfile)
		v1.GET("/user/:id/followers", s.handler.User.GetFollowers)
		v1.GET("/user/:id/following", s.handler.User.GetFollowing)
		v1.GET("/tweet", rateLimited, s.handler.Tweet.GetTweetsV1)
		v1.GET("/tweet/:id", s.handler.Tweet.GetTweet)
		v1.GET("/comment/tweet/:id", s.handler.Comment.GetTweetComments)
		v1.GET("/comment/reply/:id", s.handler.Comment.GetReplies)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(authRequired)
		{
			protected.GET("/me", s.handler.User.GetMe)
			protected.POST("/user/:id/follow", s.handler.User.FollowUser)
			protected.DELETE("/user/:id/follow", s.handler.User.UnfollowUser)

			protected.POST("/tweet/create", s.handler.Tweet.CreateTweet)

			protected.POST("/like/tweet", s.handler.Like.LikeTweet)
			protected.POST("/like/comment", s.handler.Like.LikeComment)

			protected.POST("/comment/tweet", s.handler.Comment.CreateComment)
			protected.POST("/comment/reply", s.handler.Comment.CreateReply)

			protected.POST("/report/create", s.handler.Report.CreateReport)

			// Moderation (admin role required)
			admin := protected.Group("")
			admin.Use(adminOnly)
			{
				admin.GET("/report/getAllReports", s.handler.Report.GetAllReports)
				admin.PATCH("/report/markAsSolved/:id", s.handler.Report.MarkAsSolved)
			}
		}
	}

	// v2: same tweet listing, served through the cache
	v2 := r.Group("/api/v2")
	{
		v2.GET("/tweet", rateLimited, s.handler.Tweet.GetTweetsV2)
	}

	return r
}
