package routes

import (
	"m2_studio/internal/adapter/http/handlers"
	"m2_studio/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathAdminOrders   = "/admin/orders"
	PathReviews       = "/reviews"
	PathNotifications = "/notifications"
	PathWS            = "/ws"
	PathMe            = "/me"
	PathJoin          = "/join"
)

type routeHandlers struct {
	orders        *handlers.OrderHandler
	admin         *handlers.AdminHandler
	messages      *handlers.MessageHandler
	reviews       *handlers.ReviewHandler
	notifications *handlers.NotificationHandler
	ws            *handlers.WSHandler
	profile       *handlers.ProfileHandler
	join          *handlers.JoinHandler
}

func addPublicRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator, h routeHandlers) {
	rg.POST(PathOrders, auth.OptionalAuth(), h.orders.SubmitOrder)
	rg.GET(PathReviews, h.reviews.ListRecent)
	rg.POST(PathJoin, h.join.SubmitApplication)
}

func addClientRoutes(rg *gin.RouterGroup, h routeHandlers) {
	rg.GET(PathMe, h.profile.GetMe)
	rg.PATCH(PathMe, h.profile.UpdateMe)

	orders := rg.Group(PathOrders)
	{
		orders.GET("/me", h.orders.ListMyOrders)
		orders.GET("/me/stats", h.orders.MyStats)
		orders.GET("/:id", h.orders.GetOrder)
		orders.GET("/:id/timeline", h.orders.GetTimeline)
		orders.GET("/:id/downloads", h.orders.GetDownloads)
		orders.POST("/:id/cancel", h.orders.CancelOrder)
		orders.POST("/:id/files", h.orders.UploadClientFile)

		orders.GET("/:id/messages", h.messages.ListMessages)
		orders.POST("/:id/messages", h.messages.SendMessage)
		orders.POST("/:id/messages/read", h.messages.MarkRead)

		orders.GET("/:id/review", h.reviews.GetReview)
		orders.POST("/:id/review", h.reviews.SubmitReview)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.notifications.List)
		notifications.POST("/read-all", h.notifications.MarkAllRead)
		notifications.POST("/:id/read", h.notifications.MarkRead)
	}

	ws := rg.Group(PathWS)
	{
		ws.GET("/orders", h.ws.OrdersFeed)
		ws.GET("/orders/:id", h.ws.OrderFeed)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h routeHandlers) {
	admin := rg.Group(PathAdminOrders, middleware.RequireAdmin())
	{
		admin.GET("", h.admin.ListOrders)
		admin.GET("/stats", h.admin.Stats)
		admin.PATCH("/:id/status", h.admin.UpdateStatus)
		admin.PATCH("/:id/price", h.admin.UpdatePrice)
		admin.POST("/:id/deliverables", h.admin.UploadDeliverable)
	}
}
