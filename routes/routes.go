package routes

import (
	"net/http"
	"time"

	"tourai/handlers"
	"tourai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.AuthenticateHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/signout", hb.Users.SignOutHandler)
	}
}

// RegisterUserRoutes registers profile and social-graph endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Users.GetMeHandler)
		api.PUT("/me", hb.Users.UpdateHandler)
		api.DELETE("/me", hb.Users.DeleteHandler)
		api.GET("/search", hb.Users.SearchHandler)
		api.GET("/:id", hb.Users.GetProfileHandler)
		api.POST("/:id/follow", hb.Users.FollowHandler)
		api.DELETE("/:id/follow", hb.Users.UnfollowHandler)
		api.GET("/:id/follow-stats", hb.Users.FollowStatsHandler)
	}
}

// RegisterActivityRoutes registers catalog activity endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Activities.CreateHandler)
		api.GET("", hb.Activities.ListHandler)
		api.GET("/:id", hb.Activities.GetHandler)
		api.PUT("/:id", hb.Activities.UpdateHandler)
		api.DELETE("/:id", hb.Activities.DeleteHandler)
		api.GET("/:id/rating", hb.Activities.RatingHandler)
	}
}

// RegisterRoadmapRoutes registers roadmap endpoints, including conversion into
// a dated itinerary.
func RegisterRoadmapRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/roadmaps")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Roadmaps.CreateHandler)
		api.GET("", hb.Roadmaps.ListMineHandler)
		api.GET("/public", hb.Roadmaps.ListPublicHandler)
		api.GET("/:id", hb.Roadmaps.GetHandler)
		api.PUT("/:id", hb.Roadmaps.UpdateHandler)
		api.DELETE("/:id", hb.Roadmaps.DeleteHandler)
		api.POST("/:id/activities/:activityId", hb.Roadmaps.AddActivityHandler)
		api.DELETE("/:id/activities/:activityId", hb.Roadmaps.RemoveActivityHandler)
		api.POST("/:id/convert", hb.Itineraries.ConvertRoadmapHandler)
	}
}

// RegisterItineraryRoutes registers itinerary endpoints.
func RegisterItineraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itineraries")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Itineraries.CreateHandler)
		api.GET("", hb.Itineraries.ListHandler)
		api.GET("/:id", hb.Itineraries.GetHandler)
		api.PUT("/:id", hb.Itineraries.UpdateActivitiesHandler)
		api.DELETE("/:id", hb.Itineraries.DeleteHandler)
		api.GET("/:id/activities/:activityId/evaluations", hb.Evaluations.ListHandler)
	}
}

// RegisterFeedRoutes registers the social feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Posts.CreateHandler)
		api.GET("/new", hb.Posts.ListNewHandler)
		api.GET("/older", hb.Posts.ListOlderHandler)
		api.DELETE("/:id", hb.Posts.DeleteHandler)
		api.POST("/:id/like", hb.Posts.LikeHandler)
		api.DELETE("/:id/like", hb.Posts.UnlikeHandler)
		api.POST("/:id/comments", hb.Posts.CommentHandler)
		api.GET("/:id/comments", hb.Posts.ListCommentsHandler)
	}
}

// RegisterEvaluationRoutes registers rating endpoints.
func RegisterEvaluationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/evaluations")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Evaluations.CreateHandler)
	}
}

// RegisterInviteRoutes registers itinerary invite endpoints.
func RegisterInviteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invites")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Invites.CreateHandler)
		api.POST("/:id/accept", hb.Invites.AcceptHandler)
		api.POST("/:id/decline", hb.Invites.DeclineHandler)
	}
}

// RegisterNotificationRoutes registers the notification polling endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/recent", hb.Notifications.RecentHandler)
		api.PATCH("/:id/read", hb.Notifications.MarkReadHandler)
		api.PATCH("/:id/action", hb.Notifications.MarkActionCompletedHandler)
	}
}

// RegisterAIRoutes registers AI recommendation endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/recommendations", hb.Intelligence.RecommendHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TourAI"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterRoadmapRoutes(r, hb)
	RegisterItineraryRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterEvaluationRoutes(r, hb)
	RegisterInviteRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
