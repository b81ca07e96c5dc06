package router

import (
	"time"

	"eaglehub/config"
	"eaglehub/internal/events"
	"eaglehub/internal/handler"
	"eaglehub/internal/middleware"
	"eaglehub/internal/repository"
	"eaglehub/internal/service"
	"eaglehub/internal/ws"
	"eaglehub/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, realtime *service.RealtimeService) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit("global", middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// tighter budget for the endpoints anyone can write to without a token
	writeLimit := middleware.RateLimit("public_write", middleware.NewInMemoryRateLimiter(20, 60*time.Second))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	chatRepo := repository.NewChatRepository(db)
	spinRepo := repository.NewSpinRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	bus := events.NewBus()
	hub := ws.NewHub()
	go hub.Run(bus)

	// Services
	authSvc := service.NewAuthService(cfg)
	brandingSvc := service.NewBrandingService(settingRepo, cloud, bus)
	spinSvc := service.NewSpinService(userRepo, spinRepo)
	var remote service.RemoteChatStore
	if realtime != nil {
		remote = realtime
	}
	chatSvc := service.NewChatService(chatRepo, remote, bus)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	settingsHandler := handler.NewSettingsHandler(brandingSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	videoHandler := handler.NewVideoHandler(videoRepo, cloud)
	appHandler := handler.NewApplicationHandler(appRepo)
	userHandler := handler.NewUserHandler(userRepo, spinRepo, appRepo)
	spinHandler := handler.NewSpinHandler(spinSvc)
	healthHandler := handler.NewHealthHandler(realtime)

	adminMw := middleware.AdminRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
			authGroup.POST("/google/token", googleOAuthHandler.Token)
		}

		api.GET("/settings", settingsHandler.Get)
		api.POST("/signin", writeLimit, userHandler.SignIn)
		api.GET("/profile/:phone", userHandler.Profile)
		api.POST("/spin", writeLimit, spinHandler.Spin)
		api.GET("/spin/segments", spinHandler.Segments)

		api.GET("/chat/:page", chatHandler.History)
		api.POST("/chat/:page", writeLimit, chatHandler.SendMessage)

		api.GET("/videos/role/:role", videoHandler.ForRole)
		api.GET("/videos/page/:page/latest", videoHandler.LatestForPage)

		api.POST("/applications/influencer", writeLimit, appHandler.SubmitInfluencer)
		api.POST("/applications/seller", writeLimit, appHandler.SubmitSeller)

		admin := api.Group("/admin")
		admin.Use(adminMw)
		{
			admin.POST("/settings/logo", settingsHandler.UploadLogo)
			admin.GET("/conversations", chatHandler.Conversations)
			admin.GET("/conversations/:page/:phone", chatHandler.ConversationMessages)
			admin.POST("/chat/:page/reply", chatHandler.AdminReply)
			admin.GET("/videos", videoHandler.List)
			admin.POST("/videos", videoHandler.Upsert)
			admin.DELETE("/videos/:id", videoHandler.Delete)
			admin.GET("/applications/influencer", appHandler.ListInfluencer)
			admin.GET("/applications/seller", appHandler.ListSeller)
			admin.PUT("/applications/:type/:id/status", appHandler.UpdateStatus)
			admin.GET("/users", userHandler.List)
			admin.POST("/users/cards/toggle", userHandler.ToggleCard)
			admin.GET("/diagnostics/firebase", healthHandler.FirebaseProbe)
		}
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/events", ws.UpgradeEventsWS(hub))

	return r
}
