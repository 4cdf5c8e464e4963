package routes

import (
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/handler"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Products       *handler.ProductHandler
	Favorites      *handler.FavoriteHandler
	Chat           *handler.ChatHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	favoriteHandler *handler.FavoriteHandler,
	chatHandler *handler.ChatHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Products:       productHandler,
		Favorites:      favoriteHandler,
		Chat:           chatHandler,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	// Page prefixes gated on cookie presence only; the API guard below does
	// the real verification.
	e.Use(middleware.EdgeGate("/account", "/sell", "/messages", "/favorites"))

	e.POST("/auth/signup", r.Auth.Signup, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/check-google-user", r.Auth.CheckGoogleUser, r.AuthRate.Middleware())
	e.POST("/auth/verify-email", r.Auth.VerifyEmail, r.AuthRate.Middleware())
	e.POST("/auth/resend-otp", r.Auth.ResendOTP, r.LoginRate.Middleware())
	e.POST("/auth/forgot-password", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	e.POST("/auth/reset-password", r.Auth.ResetPassword, r.AuthRate.Middleware())
	e.POST("/auth/refresh-token", r.Auth.RefreshToken, r.AuthRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout)
	e.GET("/auth/profile", r.Auth.Profile, r.AuthMiddleware.RequireAuth)

	e.GET("/products", r.Products.List)
	e.GET("/products/:id", r.Products.Get)
	e.POST("/products", r.Products.Create, r.AuthMiddleware.RequireAuth)
	e.PUT("/products/:id", r.Products.Update, r.AuthMiddleware.RequireAuth)
	e.POST("/products/:id/sold", r.Products.MarkSold, r.AuthMiddleware.RequireAuth)
	e.DELETE("/products/:id", r.Products.Delete, r.AuthMiddleware.RequireAuth)

	e.GET("/favorites", r.Favorites.List, r.AuthMiddleware.RequireAuth)
	e.POST("/favorites/:productId", r.Favorites.Add, r.AuthMiddleware.RequireAuth)
	e.DELETE("/favorites/:productId", r.Favorites.Remove, r.AuthMiddleware.RequireAuth)

	e.GET("/chat/ws", r.Chat.Connect, r.AuthMiddleware.RequireAuth)
	e.GET("/chat/:roomId/messages", r.Chat.History, r.AuthMiddleware.RequireAuth)
}
