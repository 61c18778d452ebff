package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nilsaki/moodquotes-backend/internal/application"
	"github.com/nilsaki/moodquotes-backend/pkg/response"
	"github.com/nilsaki/moodquotes-backend/pkg/validation"
)

// AuthHandler exposes registration and login. No token or session is issued;
// login returns the public identity only.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password required", validation.ToDetails(err))
		return
	}

	err := h.Svc.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		response.Message(c, http.StatusCreated, "REGISTER OK")
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "Username and password required", nil)
	case errors.Is(err, application.ErrUsernameTaken):
		response.Error(c, http.StatusConflict, "Username already exists", nil)
	default:
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Register server error", nil)
	}
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password required", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":  "LOGIN OK",
			"username": id.Username,
			"userID":   id.UserID,
		})
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "Username and password required", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusUnauthorized, "User not found", nil)
	case errors.Is(err, application.ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, "Incorrect password", nil)
	default:
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Login server error", nil)
	}
}
