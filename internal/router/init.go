package router

import (
	"github.com/nilsaki/moodquotes-backend/internal/application"
	"github.com/nilsaki/moodquotes-backend/internal/container"
	pginfra "github.com/nilsaki/moodquotes-backend/internal/infrastructure/postgres"
	handlers "github.com/nilsaki/moodquotes-backend/internal/interface/http"
	"github.com/nilsaki/moodquotes-backend/internal/router/modules"
)

func buildAuthHandler() *handlers.AuthHandler {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(repo, container.GetLogger())
	return handlers.NewAuthHandler(svc, container.GetLogger())
}

func buildCommentHandler() *handlers.CommentHandler {
	repo := pginfra.NewCommentRepository(container.GetPGPool())
	svc := application.NewCommentService(repo, container.GetLogger())
	return handlers.NewCommentHandler(svc, container.GetLogger())
}

// InitModules wires every feature module into the registry. Called once during
// startup, after the container singletons are set.
func InitModules(r *Registry) {
	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewCommentModule(buildCommentHandler()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
