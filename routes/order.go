package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/order"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/middleware"
)

func SetupOrderRoutes(r *gin.RouterGroup, deps Deps) {
	orders := r.Group("/orders")
	{
		// Checkout from the live session cart (user JWT)
		orders.POST("/checkout", middleware.ValidateToken, middleware.RequireRole("user"),
			orderControllers.CheckoutHandler(deps.DB, deps.Sessions, deps.Mailer))

		// Orders for the authenticated user
		orders.GET("/mine", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(deps.DB))

		// Back-office endpoints (API key)
		orders.GET("", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(deps.DB))
		orders.GET("/:orderID", middleware.ValidateAPIKey, orderControllers.GetOrderByIDHandler(deps.DB))
		orders.PUT("/:orderID/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(deps.DB))
		orders.PUT("/:orderID/payment-status", middleware.ValidateAPIKey, orderControllers.UpdatePaymentStatusHandler(deps.DB))
		orders.DELETE("/:orderID", middleware.ValidateAPIKey, orderControllers.DeleteOrderHandler(deps.DB))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
