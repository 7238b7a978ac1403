package routes

import (
	"github.com/gin-gonic/gin"

	"skymate/handlers"
	"skymate/middleware"
	"skymate/obs"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *handlers.HandlerBundle, metrics *obs.Metrics) {
	r.GET("/healthz", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		// Prototype auth stub; no credentials involved.
		api.GET("/dev/login", handlers.DevLogin)
		api.GET("/dev/logout", handlers.DevLogout)

		flights := api.Group("/flights")
		{
			flights.POST("/search", h.Flights.Search)
			flights.GET("/offers/:id", h.Flights.GetOffer)
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.UserAuthMiddleware())
		{
			bookings.POST("", h.Bookings.Create)
			bookings.GET("", h.Bookings.List)
			bookings.GET("/:id", h.Bookings.Get)
			bookings.PATCH("/:id", h.Bookings.Update)
			bookings.POST("/:id/cancel", h.Bookings.Cancel)
		}

		users := api.Group("/users/me")
		users.Use(middleware.UserAuthMiddleware())
		{
			users.GET("", h.Users.Me)
			users.PATCH("", h.Users.UpdateMe)
			users.POST("/travelers", h.Users.AddTraveler)
		}
	}
}
