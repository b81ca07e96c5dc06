package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eaglehub/config"
	"eaglehub/internal/database"
	"eaglehub/internal/domain"
	"eaglehub/internal/repository"
	"eaglehub/internal/router"
	"eaglehub/internal/service"
	"eaglehub/pkg/cloudinary"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := repository.NewSettingRepository(db).SeedDefaults(map[string]string{
		repository.SettingLogoURL: domain.DefaultLogoURL,
	}); err != nil {
		log.Printf("[settings] seed failed: %v", err)
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatalf("cloudinary: %v", err)
		}
	} else {
		log.Printf("[cloudinary] not configured; uploads will use placeholder URLs")
	}

	realtime := service.NewRealtimeService(cfg.Firebase.DatabaseURL, cfg.Firebase.CredentialsFile)
	if realtime != nil {
		log.Printf("[firebase] realtime sync enabled")
	} else {
		log.Printf("[firebase] not configured; running local-only")
	}

	engine := router.Setup(cfg, db, cloud, realtime)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
