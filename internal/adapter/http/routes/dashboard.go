package routes

import (
	"pedezap/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts   = "/products"
	PathPromotions = "/promotions"
	PathOrders     = "/orders"
	PathStore      = "/store"
)

func addDashboardRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, orderHandler *handlers.OrderHandler, storeHandler *handlers.StoreHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
	}

	promotions := rg.Group(PathPromotions)
	{
		promotions.POST("", catalogHandler.CreatePromotion)
		promotions.GET("", catalogHandler.ListPromotions)
		promotions.DELETE("/:id", catalogHandler.DeletePromotion)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	}

	store := rg.Group(PathStore)
	{
		store.GET("/config", storeHandler.GetConfig)
		store.PUT("/config", storeHandler.UpdateConfig)
	}
}
