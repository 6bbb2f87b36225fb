package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contenthub-backend/internal/shared/middleware"
	"contenthub-backend/internal/shared/response"
	"contenthub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupVideoRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupAuthorRoutes(v1, c)
	}

	return router
}

// =====================================================
// AUTH ROUTES
// =====================================================

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/token", c.AuthHandler.Exchange)
		auth.POST("/refresh", c.AuthHandler.Refresh)
		auth.POST("/logout", c.AuthHandler.Logout)
	}
}

// =====================================================
// USER ROUTES
// =====================================================

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := middleware.AuthMiddleware(c.JWTManager)

	users := v1.Group("/users")
	{
		users.GET("/me", authed, c.UserHandler.GetMe)
		users.GET("/:id", c.UserHandler.GetUser)
		users.DELETE("/:id", authed, c.UserHandler.DeleteUser)
	}
}

// =====================================================
// POST ROUTES
// =====================================================

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := middleware.AuthMiddleware(c.JWTManager)
	publisher := middleware.RequirePublisher()

	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/search", c.PostHandler.SearchPosts)
		posts.GET("/:id", c.PostHandler.GetPost)
		posts.GET("/:id/comments", c.CommentHandler.ListCommentsByPost)

		posts.POST("", authed, publisher, c.PostHandler.CreatePost)
		posts.PATCH("/:id", authed, publisher, c.PostHandler.UpdatePost)
		posts.DELETE("/:id", authed, publisher, c.PostHandler.DeletePost)
	}
}

// =====================================================
// VIDEO ROUTES
// =====================================================

func setupVideoRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := middleware.AuthMiddleware(c.JWTManager)
	publisher := middleware.RequirePublisher()

	videos := v1.Group("/videos")
	{
		videos.GET("", c.VideoHandler.ListVideos)
		videos.GET("/search", c.VideoHandler.SearchVideos)
		videos.GET("/:id", c.VideoHandler.GetVideo)
		videos.GET("/:id/comments", c.CommentHandler.ListCommentsByVideo)

		videos.POST("", authed, publisher, c.VideoHandler.CreateVideo)
		videos.PATCH("/:id", authed, publisher, c.VideoHandler.UpdateVideo)
		videos.DELETE("/:id", authed, publisher, c.VideoHandler.DeleteVideo)
	}
}

// =====================================================
// COMMENT ROUTES
// =====================================================

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := middleware.AuthMiddleware(c.JWTManager)

	comments := v1.Group("/comments")
	{
		comments.POST("", authed, c.CommentHandler.CreateComment)
		comments.PATCH("/:id", authed, c.CommentHandler.UpdateComment)
		comments.DELETE("/:id", authed, c.CommentHandler.DeleteComment)
	}
}

// =====================================================
// AUTHOR ROUTES
// =====================================================

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("/:id/posts", c.PostHandler.ListPostsByAuthor)
		authors.GET("/:id/videos", c.VideoHandler.ListVideosByAuthor)
	}
}

// =====================================================
// HEALTH
// =====================================================

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
