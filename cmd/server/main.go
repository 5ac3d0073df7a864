package main

import (
	"context"
	"encoding/gob"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // keep timezone data in slim images

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/cinego/internal/config"
	"github.com/user/cinego/internal/handler"
	"github.com/user/cinego/internal/middleware"
	"github.com/user/cinego/internal/model"
	"github.com/user/cinego/internal/repository"
	"github.com/user/cinego/internal/router"
	"github.com/user/cinego/internal/service"
	"github.com/user/cinego/internal/utils"
)

func main() {
	// Session payload type must be registered for gob encoding.
	gob.Register(model.SessionUser{})

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := config.Load()

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Series{},
		&model.ChatMessage{},
		&model.WatchTimeEntry{},
	); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	repos := repository.NewRepositories(db)

	if err := repository.SeedCatalog(repos); err != nil {
		log.Printf("catalog seed failed: %v", err)
	}

	utils.InitCache()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // must stay false off HTTPS
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("cinego_session", store))

	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	h := handler.NewHandler(repos, cfg)

	cleanupSvc := service.NewCleanupService(repos, cfg.RetentionDays)
	cleanupSvc.Start()

	router.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("server listening on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced server shutdown:", err)
	}

	log.Println("server exited")
}
