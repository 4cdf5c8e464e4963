package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/handler"
	apiMiddleware "github.com/BinaryBrain010/buy-sell-liberia-sub002/api/middleware"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/routes"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/config"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/chat"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/service"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.WithError(err).Fatal("connect database")
	}

	ctx := context.Background()
	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("connect redis")
	}
	defer redisClient.Close()

	validate := validator.New()

	jwtManager := &utils.JWTManager{
		Secret:          []byte(cfg.JWTSecret),
		Issuer:          cfg.JWTIssuer,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)
	productRepo := repository.NewProductRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	var emailSender service.EmailSender
	if cfg.ResendAPIKey != "" && cfg.EmailFrom != "" {
		emailSender = service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		logger.Warn("email sender not configured, OTP delivery disabled")
	}

	authService := service.NewAuthService(
		userRepo,
		otpRepo,
		securityRepo,
		emailSender,
		service.BcryptPasswordHasher{},
		service.JWTTokenIssuer{Manager: jwtManager},
		service.RealClock{},
		service.AuthConfig{
			AccessTokenTTL:  cfg.AccessTokenTTL,
			RefreshTokenTTL: cfg.RefreshTokenTTL,
			OTPTTL:          cfg.OTPTTL,
		},
	)
	productService := service.NewProductService(productRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo)
	chatService := service.NewChatService(messageRepo, productRepo)

	hub := chat.NewHub()
	go hub.Run(ctx)
	presence := chat.NewPresenceTracker(redisClient, cfg.PresenceTTL)

	authHandler := handler.NewAuthHandler(authService, jwtManager, validate)
	authHandler.CookieDomain = cfg.CookieDomain
	authHandler.SecureCookies = cfg.CookieSecure && cfg.Production()
	productHandler := handler.NewProductHandler(productService, validate)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	chatHandler := handler.NewChatHandler(chatService, hub, presence, logger)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: jwtManager}
	router := routes.NewRouter(app, authHandler, productHandler, favoriteHandler, chatHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
