package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nilsaki/moodquotes-backend/internal/container"
	handlers "github.com/nilsaki/moodquotes-backend/internal/interface/http"
	"github.com/nilsaki/moodquotes-backend/internal/interface/middleware"
)

// AuthModule wires the credential routes.
// POST /register, POST /login — both public, rate limited per IP since they
// carry passwords and drive bcrypt work.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
