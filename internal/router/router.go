package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancellationQuote(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CancelBookingWithPayment(c *ginext.Context)
	RescheduleBooking(c *ginext.Context)
	ModifyService(c *ginext.Context)

	Register(c *ginext.Context)
	Login(c *ginext.Context)
	RedeemPoints(c *ginext.Context)

	LookupAddress(c *ginext.Context)
	UploadLink(c *ginext.Context)

	AdminCancelBooking(c *ginext.Context)
	AdminRescheduleBooking(c *ginext.Context)
	AdminModifyService(c *ginext.Context)
	AdjustPoints(c *ginext.Context)
	ReportCopy(c *ginext.Context)
}

type WebhookHandler interface {
	HandleCheckout(c *ginext.Context)
	HandleCancellationCheckout(c *ginext.Context)
}

func InitRouter(mode string, h Handler, wh WebhookHandler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:ref", h.GetBooking)
		api.GET("/bookings/:ref/cancellation-quote", h.CancellationQuote)
		api.POST("/bookings/:ref/cancel", h.CancelBooking)
		api.POST("/bookings/:ref/cancel-with-payment", h.CancelBookingWithPayment)
		api.POST("/bookings/:ref/reschedule", h.RescheduleBooking)
		api.POST("/bookings/:ref/modify-service", h.ModifyService)
		api.GET("/bookings/:ref/upload-link", h.UploadLink)

		// Users
		api.POST("/users/register", h.Register)
		api.POST("/users/login", h.Login)
		api.POST("/users/points/redeem", h.RedeemPoints)

		// Address lookup
		api.GET("/address/:postcode", h.LookupAddress)

		// Admin
		admin := api.Group("/admin", adminAuth)
		{
			admin.POST("/bookings/:ref/cancel", h.AdminCancelBooking)
			admin.POST("/bookings/:ref/reschedule", h.AdminRescheduleBooking)
			admin.POST("/bookings/:ref/modify-service", h.AdminModifyService)
			admin.POST("/users/points/adjust", h.AdjustPoints)
			admin.POST("/reports/copy", h.ReportCopy)
		}
	}

	// Stripe signs webhook payloads, so these stay outside the API group.
	router.POST("/webhooks/stripe", wh.HandleCheckout)
	router.POST("/webhooks/stripe/cancellation", wh.HandleCancellationCheckout)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
