package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/handler"
	"github.com/streamvault/platform-service/pkg/constants"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Media         *handler.MediaHandler
	Subscription  *handler.SubscriptionHandler
	Upload        *handler.UploadHandler
	Streaming     *handler.StreamingHandler
	Notifications *handler.NotificationHandler
	NotifyWS      *handler.NotifyWSHandler
	Health        *handler.HealthHandler
}

// New builds the HTTP router.
func New(h Handlers) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET(constants.PathHealth, h.Health.Health)
	r.GET(constants.PathReady, h.Health.Ready)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.CurrentUser)
		auth.POST("/password/change", h.Auth.ChangePassword)
		auth.POST("/password/forgot", h.Auth.RequestPasswordReset)
		auth.GET("/password/reset/:token", h.Auth.VerifyResetToken)
		auth.POST("/password/reset", h.Auth.ResetPassword)
		auth.POST("/email/change", h.Auth.RequestChangeEmail)
		auth.POST("/email/change/verify", h.Auth.VerifyChangeEmail)
		auth.POST("/email/verify", h.Auth.VerifyEmail)
	}

	users := r.Group("/users")
	{
		users.GET("/:id", h.User.GetProfile)
		users.PATCH("/:id", h.User.UpdateProfile)
		users.POST("/phone/verify", h.User.VerifyPhoneNumber)
		users.POST("/email/resend", h.User.ResendEmailVerification)
		users.POST("/:id/suspend", h.User.SuspendAccount)
		users.POST("/:id/reactivate", h.User.ReactivateAccount)
		users.GET("/:id/settings", h.User.GetSettings)
		users.PUT("/:id/settings", h.User.UpdateSettings)

		users.GET("/:id/favorites", h.Media.ListFavorites)
		users.POST("/:id/favorites/:mediaId", h.Media.AddFavorite)
		users.DELETE("/:id/favorites/:mediaId", h.Media.RemoveFavorite)
		users.GET("/:id/playlists", h.Media.ListPlaylists)
		users.POST("/:id/playlists", h.Media.CreatePlaylist)

		users.GET("/:id/subscription", h.Subscription.GetUserSubscription)
		users.POST("/:id/subscription", h.Subscription.Subscribe)
		users.POST("/:id/subscription/cancel", h.Subscription.Cancel)
		users.POST("/:id/subscription/upgrade", h.Subscription.Upgrade)
		users.POST("/:id/subscription/downgrade", h.Subscription.Downgrade)
		users.POST("/:id/subscription/renew", h.Subscription.Renew)
		users.GET("/:id/subscription/active", h.Subscription.IsActive)
		users.POST("/:id/payments", h.Subscription.ProcessPayment)
		users.GET("/:id/payments", h.Subscription.PaymentHistory)

		users.GET("/:id/uploads", h.Upload.History)

		users.GET("/:id/streams", h.Streaming.ActiveStreams)
		users.GET("/:id/streams/limit", h.Streaming.CheckLimit)
		users.GET("/:id/history", h.Streaming.History)
		users.GET("/:id/resume/:mediaId", h.Streaming.ResumePoint)

		users.GET("/:id/notifications", h.Notifications.List)
		users.GET("/:id/notifications/unread", h.Notifications.UnreadCount)
		users.POST("/:id/notifications/read", h.Notifications.MarkAllRead)
	}

	media := r.Group("/media")
	{
		media.GET("", h.Media.ListMedia)
		media.POST("", h.Media.CreateMedia)
		media.POST("/search", h.Media.SearchMedia)
		media.GET("/trending", h.Media.Trending)
		media.GET("/recommended", h.Media.Recommended)
		media.GET("/:id", h.Media.GetMedia)
		media.PATCH("/:id", h.Media.UpdateMedia)
		media.DELETE("/:id", h.Media.DeleteMedia)
		media.POST("/:id/views", h.Media.IncrementViews)
		media.POST("/:id/rate", h.Media.RateMedia)
	}

	r.GET("/categories", h.Media.ListCategories)
	r.GET("/categories/:id", h.Media.GetCategory)

	playlists := r.Group("/playlists")
	{
		playlists.GET("/:id", h.Media.GetPlaylist)
		playlists.POST("/:id/media/:mediaId", h.Media.AddToPlaylist)
		playlists.DELETE("/:id/media/:mediaId", h.Media.RemoveFromPlaylist)
	}

	r.GET("/plans", h.Subscription.ListPlans)
	r.GET("/plans/:id", h.Subscription.GetPlan)
	r.GET("/payments/:id", h.Subscription.GetPayment)
	r.POST("/payments/:id/refund", h.Subscription.RefundPayment)

	uploads := r.Group("/uploads")
	{
		uploads.POST("", h.Upload.Initiate)
		uploads.GET("/:id", h.Upload.Status)
		uploads.DELETE("/:id", h.Upload.Delete)
		uploads.POST("/:id/complete", h.Upload.Complete)
		uploads.POST("/:id/cancel", h.Upload.Cancel)
		uploads.PATCH("/:id/progress", h.Upload.UpdateProgress)
		uploads.GET("/:id/moderation", h.Upload.Moderation)
	}

	streams := r.Group("/streams")
	{
		streams.POST("", h.Streaming.Start)
		streams.GET("/:id", h.Streaming.Status)
		streams.PATCH("/:id/progress", h.Streaming.UpdateProgress)
		streams.POST("/:id/end", h.Streaming.End)
	}

	notifications := r.Group("/notifications")
	{
		notifications.POST("", h.Notifications.Send)
		notifications.POST("/:id/read", h.Notifications.MarkRead)
		notifications.DELETE("/:id", h.Notifications.Delete)
	}

	// WebSocket: /ws/notifications/:user_id
	r.GET("/ws/notifications/:user_id", h.NotifyWS.ServeWS)

	return r
}
