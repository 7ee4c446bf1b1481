package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/database"
	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/config"
	"github.com/sunileswar-collab/BusinessCheck/internal/email"
	"github.com/sunileswar-collab/BusinessCheck/internal/handlers"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
	"github.com/sunileswar-collab/BusinessCheck/internal/middleware"
	"github.com/sunileswar-collab/BusinessCheck/internal/otp"
	"github.com/sunileswar-collab/BusinessCheck/internal/routes"
	"github.com/sunileswar-collab/BusinessCheck/internal/services"
	"github.com/sunileswar-collab/BusinessCheck/internal/storage"
)

// Run boots the full application and blocks serving HTTP.
func Run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is not configured")
	}
	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	sc, err := BuildServices(cfg)
	if err != nil {
		return err
	}

	router := SetupRouter(cfg, db, sc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// BuildServices assembles storage, email and OTP providers from config and
// wires them into the service container.
func BuildServices(cfg *config.Config) (*services.ServiceContainer, error) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider, err = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			VerifyURL: cfg.Email.VerifyURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email provider: %w", err)
		}
	} else {
		logger.Warn("smtp not configured, verification emails are disabled")
		emailProvider = email.NoopProvider{}
	}

	var otpVerifier auth.OTPVerifier
	if cfg.OTP.RedisAddr != "" {
		otpVerifier, err = otp.NewRedisStore(context.Background(), otp.RedisConfig{
			Addr:     cfg.OTP.RedisAddr,
			Password: cfg.OTP.RedisPassword,
			DB:       cfg.OTP.RedisDB,
			TTL:      time.Duration(cfg.OTP.TTL) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize otp store: %w", err)
		}
	} else {
		logger.Warn("redis not configured, using the accept-all otp verifier")
		otpVerifier = otp.NewAcceptAll()
	}

	return services.NewServiceContainer(cfg, store, emailProvider, otpVerifier), nil
}

// SetupRouter builds the gin engine with the full middleware chain and
// routes. Exported so integration tests can serve the real application.
func SetupRouter(cfg *config.Config, db *gorm.DB, sc *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.Register(router, handlers.NewAppHandlers(sc))
	return router
}
