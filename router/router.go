package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hostline/host-stand/controllers"
	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/middlewares"
)

func SetupRouter(db *gorm.DB, fl *floor.Floor) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	waitlistCtrl := controllers.NewWaitlistController(fl)
	serverCtrl := controllers.NewServerController(fl)
	tableCtrl := controllers.NewTableController(fl)
	rotationCtrl := controllers.NewRotationController(fl)
	floorCtrl := controllers.NewFloorController(fl)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Read-only floor view for wall displays.
	r.GET("/floor", floorCtrl.GetFloor)

	// Live floor stream for host terminals (token in query string).
	ws := r.Group("/floor")
	ws.Use(middlewares.WebSocketAuthMiddleware())
	ws.GET("/ws", floorCtrl.FloorWS)

	// ----------------------------------------------------------------
	//                      HOST STAND ROUTES
	// ----------------------------------------------------------------
	host := r.Group("/host")
	host.Use(middlewares.AuthMiddleware())
	host.Use(middlewares.RequireRole("host"))

	host.GET("/profile", userCtrl.GetProfile)
	host.POST("/logout", userCtrl.Logout)

	// WAITLIST
	host.GET("/waitlist", waitlistCtrl.GetWaitlist)
	host.POST("/waitlist", waitlistCtrl.AddGuest)
	host.DELETE("/waitlist/:position", waitlistCtrl.RemoveGuest)

	// ROSTER
	host.GET("/servers", serverCtrl.GetServers)
	host.POST("/servers", serverCtrl.AddServer)
	host.DELETE("/servers/:position", serverCtrl.RemoveServer)
	host.PUT("/servers/present", serverCtrl.SetPresent)

	// TABLES
	host.GET("/tables", tableCtrl.GetAllTables)
	host.POST("/tables/:table_id/seat", tableCtrl.SeatTable)
	host.POST("/tables/:table_id/cycle", tableCtrl.CycleTable)
	host.POST("/tables/:table_id/bus", tableCtrl.BusTable)
	host.POST("/tables/:table_id/clear", tableCtrl.ClearTable)
	host.POST("/floor/rebuild", tableCtrl.RebuildFloor)

	// ROTATION
	host.GET("/rotation", rotationCtrl.GetRotation)
	host.GET("/rotation/suggestion", rotationCtrl.GetSuggestion)
	host.PUT("/rotation/direction", rotationCtrl.SetDirection)
	host.POST("/rotation/marks/:server", rotationCtrl.AddMark)
	host.DELETE("/rotation/marks/:server", rotationCtrl.RemoveMark)

	return r
}
