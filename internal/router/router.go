package router

import (
	"loop/internal/handlers"
	"loop/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	uniHandler := handlers.NewUniversityHandler()
	reviewHandler := handlers.NewReviewHandler()
	suggestionHandler := handlers.NewSuggestionHandler()
	commentHandler := handlers.NewCommentHandler()
	uniCommentHandler := handlers.NewUniCommentHandler()
	voteHandler := handlers.NewVoteHandler()
	userHandler := handlers.NewUserHandler()
	seoHandler := handlers.NewSEOHandler()

	// Public routes
	r.GET("/", uniHandler.Index)                        // university list with search and sort
	r.GET("/uni/:id", uniHandler.Detail)                // university page
	r.GET("/suggestions", suggestionHandler.List)       // suggestion board
	r.GET("/suggestions/:id", suggestionHandler.Detail) // suggestion with comments

	r.GET("/login", authHandler.ShowLogin)
	r.GET("/auth/google", authHandler.GoogleLogin)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)
	r.GET("/logout", authHandler.Logout)

	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.Sitemap)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/submit/university", uniHandler.ShowCreate)
		authorized.POST("/submit/university", uniHandler.Create)

		authorized.POST("/uni/:id/review", reviewHandler.Create)
		authorized.GET("/review/:id/edit", reviewHandler.ShowEdit)
		authorized.POST("/review/:id/edit", reviewHandler.Update)
		authorized.DELETE("/review/:id", reviewHandler.Delete)

		authorized.GET("/submit/suggestion", suggestionHandler.ShowCreate)
		authorized.POST("/submit/suggestion", suggestionHandler.Create)
		authorized.GET("/suggestions/:id/edit", suggestionHandler.ShowEdit)
		authorized.POST("/suggestions/:id/edit", suggestionHandler.Update)
		authorized.DELETE("/suggestions/:id", suggestionHandler.Delete)

		authorized.POST("/comments", commentHandler.Create)
		authorized.POST("/comments/update", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)

		authorized.POST("/uni-comments", uniCommentHandler.Create)
		authorized.POST("/uni-comments/reply", uniCommentHandler.CreateReply)

		authorized.POST("/vote/:type/:id", voteHandler.Vote)
	}

	// Dashboard routes
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthRequired())
	{
		dashboard.GET("", userHandler.Dashboard)
		dashboard.GET("/settings", userHandler.ShowSettings)
		dashboard.POST("/settings", userHandler.UpdateSettings)
	}
}
