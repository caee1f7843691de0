package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"carbooking/database"
	"carbooking/handlers"
	"carbooking/routes"
	"carbooking/services"
)

func main() {
	// 載入 .env 檔案
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using default environment variables: %v", err)
	}

	// 初始化儲存後端
	store := initStore()

	// 注入式組裝：store -> service -> handler
	svc := services.New(store)
	h := handlers.New(svc)

	// 設置 Gin 模式
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)
	log.Printf("Gin mode set to %s", ginMode)

	// 初始化 Gin 路由器
	r := gin.Default()

	// 創建一個 API 路由組
	api := r.Group("/api")
	{
		routes.Path(api, h)
	}

	// 啟動定時任務
	c := cron.New()

	// 過期訂單掃描定時任務（每 5 分鐘執行一次；讀取路徑也會惰性掃描，這裡只是兜底）
	_, err := c.AddFunc("*/5 * * * *", func() {
		log.Println("Checking for expired bookings...")
		if err := svc.SweepExpiredBookings(); err != nil {
			log.Printf("Failed to sweep expired bookings: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule expired bookings sweep cron job: %v", err)
	}

	c.Start()
	log.Println("Cron jobs started")

	// 啟動伺服器
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initStore 依環境變數選擇儲存後端：mysql 或 memory（預設）
func initStore() database.Store {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "mysql" {
		dsn := os.Getenv("MYSQL_DSN")
		if dsn == "" {
			dsn = "rental_user:rental1234@tcp(127.0.0.1:3306)/rental_db?charset=utf8mb4&parseTime=True&loc=Local"
		}
		store, err := database.NewGormStore(dsn)
		if err != nil {
			log.Fatalf("Failed to initialize MySQL store: %v", err)
		}
		log.Println("Using MySQL storage backend")
		return store
	}

	log.Println("Using in-memory storage backend (data is lost on restart)")
	return database.NewMemoryStore()
}
