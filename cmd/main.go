package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aidigitalcashout-cell/v0-ecobank/config"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/application"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/container"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/infrastructure/redisstore"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/interface/middleware"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/router"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/helpers"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/sms"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Redis backs snapshot persistence and the SMS rate limiter. A missing
	// server is tolerated: the snapshot repository degrades to defaults and
	// the limiter degrades open.
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	// GCS is optional; without a bucket the picture-upload route answers 503.
	var gcsClient *storage.Client
	if cfg.GCSBucket != "" {
		client, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Fatal("failed to init GCS client")
		}
		defer func() { _ = client.Close() }()
		gcsClient = client
	}

	// SMS provider: Twilio when configured, the logging mock otherwise. The
	// HTTP routes get the real provider or nil (their contract answers 500
	// when unconfigured); the store always gets a working sender.
	twilio := sms.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.SMSCountryPrefix)
	var routeProvider sms.Provider
	var storeProvider sms.Provider = sms.NewMock(logger)
	if twilio.Configured() {
		routeProvider = twilio
		storeProvider = twilio
	}

	snapshots := redisstore.NewSnapshotRepository(rdb, cfg.AppName, logger)
	store := application.NewDataStore(application.StoreConfig{
		StorageKey:       cfg.StorageKey,
		AutosaveInterval: cfg.AutosaveInterval,
	}, snapshots, storeProvider, logger)
	defer store.Close()

	// Provide singletons to the container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetGCS(gcsClient)
	container.SetStore(store)
	container.SetRouteProvider(routeProvider)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown; store.Close (deferred) flushes the final snapshot
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
