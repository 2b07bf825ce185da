package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"royal-palace-backend/controllers"
	"royal-palace-backend/middleware"
	"royal-palace-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the gin engine.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	oc *controllers.OrderController,
	ac *controllers.AdminController,
	sc *controllers.SettingsController,
	adminSvc *services.AdminService,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:number", rc.GetRoom)
			rooms.POST("/:number/book", bc.BookRoom)
			rooms.POST("/:number/orders", oc.OrderFood)
			rooms.GET("/:number/bill", bc.GetBill)
			rooms.POST("/:number/checkout", bc.Checkout)
		}

		api.GET("/menu", oc.GetMenu)

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(adminSvc))
		{
			admin.GET("/rooms", ac.GetAvailability)
			admin.GET("/rooms/:number", ac.GetRoomDetail)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
		}
	}

	return r
}
