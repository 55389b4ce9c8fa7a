package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Bishanprabhashwara/NYXAEBackend/controllers"
	"github.com/Bishanprabhashwara/NYXAEBackend/middleware"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// RegisterRoutes wires every endpoint to its controller.
func RegisterRoutes(
	r *gin.Engine,
	tshirtController *controllers.TshirtController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	userController *controllers.UserController,
	userService *services.UserService,
) {
	api := r.Group("/api")

	tshirts := api.Group("/tshirts")
	{
		tshirts.POST("/", tshirtController.CreateTshirt)
		tshirts.GET("/", tshirtController.GetAllTshirts)
		tshirts.GET("/search", tshirtController.SearchTshirts)
		tshirts.GET("/size/:size", tshirtController.GetTshirtsBySize)
		tshirts.GET("/color/:color", tshirtController.GetTshirtsByColor)
		tshirts.GET("/price-range", tshirtController.GetTshirtsByPriceRange)
		tshirts.GET("/product/:productId", tshirtController.GetTshirtByProductID)
		tshirts.GET("/:id", tshirtController.GetTshirtByID)
		tshirts.PUT("/:id", tshirtController.UpdateTshirt)
		tshirts.DELETE("/:id", tshirtController.DeleteTshirt)
	}

	cart := api.Group("/cart")
	{
		cart.GET("/", cartController.GetCart)
		cart.POST("/", cartController.AddToCart)
		cart.PUT("/", cartController.UpdateCartItem)
		cart.DELETE("/", cartController.RemoveFromCart)
		cart.DELETE("/clear", cartController.ClearCart)
		cart.GET("/summary", cartController.GetCartSummary)
	}

	orders := api.Group("/orders")
	{
		orders.POST("/", orderController.CreateOrder)
		orders.GET("/", orderController.GetAllOrders)
		orders.GET("/email/:email", orderController.GetOrdersByEmail)
		orders.GET("/whatsapp/:whatsapp", orderController.GetOrdersByWhatsApp)
		orders.GET("/:id", orderController.GetOrderByID)
		orders.PUT("/:id", orderController.UpdateOrder)
		orders.PATCH("/:id/status", orderController.UpdateOrderStatus)
		orders.PATCH("/:id/complete", orderController.MarkOrderCompleted)
		orders.DELETE("/:id", orderController.DeleteOrder)
	}

	auth := api.Group("/auth", middleware.RateLimit())
	{
		auth.POST("/register", userController.Register)
		auth.POST("/login", userController.Login)
		auth.GET("/me", middleware.RequireAuth(userService), userController.Me)
	}
}
