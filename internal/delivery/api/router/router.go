// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/router/handler"
	"rescue/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// reserveRateLimitScope keys the reservation token bucket.
const reserveRateLimitScope = "reserve"

type RouterParams struct {
	fx.In

	SearchHandler       *handler.SearchHandler
	ReservationHandler  *handler.ReservationHandler
	StreamHandler       *handler.StreamHandler
	NotificationHandler *handler.NotificationHandler
	MerchantHandler     *handler.MerchantHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler       *handler.SearchHandler
	reservationHandler  *handler.ReservationHandler
	streamHandler       *handler.StreamHandler
	notificationHandler *handler.NotificationHandler
	merchantHandler     *handler.MerchantHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:       params.SearchHandler,
		reservationHandler:  params.ReservationHandler,
		streamHandler:       params.StreamHandler,
		notificationHandler: params.NotificationHandler,
		merchantHandler:     params.MerchantHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.GET("/search", r.searchHandler.SearchOffers)
		offersGroup.GET("/:id", r.searchHandler.GetOffer)
	}

	reservationsGroup := apiV1.Group("/reservations")
	{
		reservationsGroup.POST("", r.reservationHandler.Reserve,
			r.authMiddleware.RequireRole(entity.RoleClient),
			r.rateLimitMiddleware.Limit(reserveRateLimitScope),
		)
		reservationsGroup.GET("", r.reservationHandler.ListClientReservations)
		reservationsGroup.POST("/:id/cancel", r.reservationHandler.CancelReservation)
		reservationsGroup.POST("/:id/archive", r.reservationHandler.ArchiveReservation)
	}

	streamGroup := apiV1.Group("/stream")
	{
		streamGroup.GET("", r.streamHandler.Subscribe)
		streamGroup.DELETE("/:sessionId", r.streamHandler.Unsubscribe)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
	}

	// Merchant routes require the "merchant" role
	merchantGroup := apiV1.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.GET("/profile", r.merchantHandler.GetProfile)
		merchantGroup.PUT("/profile", r.merchantHandler.UpsertProfile)
		merchantGroup.PUT("/location", r.merchantHandler.UpdateLocation)
		merchantGroup.PATCH("/status", r.merchantHandler.SetStatus)

		merchantGroup.POST("/offers", r.merchantHandler.CreateOffer)
		merchantGroup.GET("/offers", r.merchantHandler.ListOffers)
		merchantGroup.GET("/offers/active", r.merchantHandler.ListActiveOffers)
		merchantGroup.PUT("/offers/:id", r.merchantHandler.UpdateOffer)
		merchantGroup.PATCH("/offers/:id/status", r.merchantHandler.SetOfferStatus)
		merchantGroup.DELETE("/offers/:id", r.merchantHandler.DeleteOffer)
		merchantGroup.POST("/offers/:id/sales", r.merchantHandler.RecordSale)

		merchantGroup.GET("/reservations", r.reservationHandler.ListMerchantReservations)
		merchantGroup.POST("/reservations/:id/complete", r.reservationHandler.CompleteReservation)
	}
}
