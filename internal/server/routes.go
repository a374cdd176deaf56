package server

import (
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"printshop-backend/docs"
	"printshop-backend/internal/config"
	"printshop-backend/internal/handlers"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type Services struct {
	Identity *services.IdentityService
	Resolver *services.SessionResolver
	Orders   *services.OrderService
}

// NewRouter wires every HTTP route. Client routes need a profile; admin
// routes additionally need the Administrador role.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	setSwaggerHost(cfg.BaseURL)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	authHandler := handlers.NewAuthHandler(svc.Identity)
	profilesHandler := handlers.NewProfilesHandler(svc.Resolver)
	ordersHandler := handlers.NewOrdersHandler(svc.Orders, cfg.MaxUploadSize)
	statusHandler := handlers.NewStatusHandler(svc.Orders)
	filesHandler := handlers.NewFilesHandler(svc.Orders)
	adminHandler := handlers.NewAdminHandler(svc.Orders)

	api := router.Group("/api/v1")

	// Public
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/signin", authHandler.SignIn)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.GET("/navigation", middleware.OptionalAuth(cfg), handlers.Navigation)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	authed.POST("/auth/signout", authHandler.SignOut)
	authed.GET("/me", profilesHandler.Me)

	withProfile := authed.Group("")
	withProfile.Use(middleware.RequireProfile(svc.Resolver))

	// Orders
	withProfile.POST("/orders", ordersHandler.CreateOrder)
	withProfile.GET("/orders", ordersHandler.ListOrders)
	withProfile.GET("/orders/:order_id", ordersHandler.GetOrder)
	withProfile.DELETE("/orders/:order_id", ordersHandler.DeleteOrder)
	withProfile.GET("/orders/:order_id/status", statusHandler.GetStatus)
	withProfile.GET("/orders/:order_id/document", filesHandler.GetDocument)

	// Administrators
	admin := withProfile.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/orders/pending", adminHandler.Pending)
	admin.GET("/orders/assigned", adminHandler.Assigned)
	admin.GET("/orders/history", adminHandler.History)
	admin.POST("/orders/:order_id/assign", adminHandler.Assign)
	admin.POST("/orders/:order_id/complete", adminHandler.Complete)

	return router
}

func setSwaggerHost(baseURL string) {
	if baseURL == "" {
		return
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return
	}
	docs.SwaggerInfo.Host = u.Host
	if u.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
}
