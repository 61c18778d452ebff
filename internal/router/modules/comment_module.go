package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nilsaki/moodquotes-backend/internal/container"
	handlers "github.com/nilsaki/moodquotes-backend/internal/interface/http"
	"github.com/nilsaki/moodquotes-backend/internal/interface/middleware"
)

// CommentModule wires the comment CRUD routes. All routes are public; the
// ownership check on mutations happens in the service against the username
// claimed in the payload.
type CommentModule struct {
	Handler *handlers.CommentHandler
}

func NewCommentModule(h *handlers.CommentHandler) *CommentModule {
	return &CommentModule{Handler: h}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	// softer limit than the credential routes
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/comments", limiter, m.Handler.Add)
	rg.GET("/comments", limiter, m.Handler.List)
	rg.PUT("/comments/:id", limiter, m.Handler.Update)
	rg.DELETE("/comments/:id", limiter, m.Handler.Delete)
}
