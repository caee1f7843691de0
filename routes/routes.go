package routes

import (
	"github.com/gin-gonic/gin"

	"carbooking/handlers"
)

func Path(router *gin.RouterGroup, h *handlers.Handler) {
	// 版本控制
	v1 := router.Group("/v1")
	{
		// 測試路由
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "pong"})
		})

		// 車輛路由
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", h.ListVehicles) // 查詢車輛清單（可帶日期區間）
			vehicles.POST("", h.CreateVehicle)
			vehicles.GET("/:id", h.GetVehicle)
			vehicles.PUT("/:id", h.UpdateVehicle)
			vehicles.DELETE("/:id", h.DeleteVehicle)
			vehicles.GET("/:id/bookings", h.GetVehicleBookings)
		}

		// 訂單路由
		bookings := v1.Group("/bookings")
		{
			bookings.GET("", h.ListBookings)
			bookings.POST("", h.CreateBooking)
			bookings.PUT("/:id", h.UpdateBooking)
		}

		// 儀表板統計
		v1.GET("/stats", h.GetStats)

		// 客戶名錄（由訂單彙整）
		customers := v1.Group("/customers")
		{
			customers.GET("", h.ListCustomers)
			customers.PUT("", h.UpdateCustomer)
		}
	}
}
