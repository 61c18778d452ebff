package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nilsaki/moodquotes-backend/internal/application"
	"github.com/nilsaki/moodquotes-backend/pkg/response"
	"github.com/nilsaki/moodquotes-backend/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type addCommentRequest struct {
	QuoteText string `json:"quote_text" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

type updateCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
}

type deleteCommentRequest struct {
	Username string `json:"username" binding:"required"`
}

// commentView is the list element shape: id, owner and body only.
type commentView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Comment  string `json:"comment"`
}

// Add POST /comments
func (h *CommentHandler) Add(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "quote_text, username and comment required", validation.ToDetails(err))
		return
	}

	err := h.Svc.Add(c.Request.Context(), req.QuoteText, req.Username, req.Comment)
	switch {
	case err == nil:
		response.Message(c, http.StatusCreated, "COMMENT ADDED")
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "quote_text, username and comment required", nil)
	default:
		h.Logger.WithError(err).Error("add comment failed")
		response.Error(c, http.StatusInternalServerError, "Comment server error", nil)
	}
}

// List GET /comments?quote=...
func (h *CommentHandler) List(c *gin.Context) {
	quote := c.Query("quote")
	if quote == "" {
		response.Error(c, http.StatusBadRequest, "quote query parameter required", nil)
		return
	}

	comments, err := h.Svc.ListByQuote(c.Request.Context(), quote)
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			response.Error(c, http.StatusBadRequest, "quote query parameter required", nil)
			return
		}
		h.Logger.WithError(err).Error("list comments failed")
		response.Error(c, http.StatusInternalServerError, "Comment server error", nil)
		return
	}

	out := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		out = append(out, commentView{ID: cm.ID, Username: cm.Username, Comment: cm.Comment})
	}
	c.JSON(http.StatusOK, out)
}

// Update PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and comment required", validation.ToDetails(err))
		return
	}

	actor := application.ClaimedIdentity{Name: req.Username}
	err := h.Svc.Update(c.Request.Context(), actor, id, req.Comment)
	switch {
	case err == nil:
		response.Message(c, http.StatusOK, "COMMENT UPDATED")
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "username and comment required", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "Not allowed", nil)
	default:
		h.Logger.WithError(err).Error("update comment failed")
		response.Error(c, http.StatusInternalServerError, "Comment server error", nil)
	}
}

// Delete DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}
	var req deleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username required", validation.ToDetails(err))
		return
	}

	actor := application.ClaimedIdentity{Name: req.Username}
	err := h.Svc.Delete(c.Request.Context(), actor, id)
	switch {
	case err == nil:
		response.Message(c, http.StatusOK, "COMMENT DELETED")
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "username required", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "Not allowed", nil)
	default:
		h.Logger.WithError(err).Error("delete comment failed")
		response.Error(c, http.StatusInternalServerError, "Comment server error", nil)
	}
}

func commentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid comment id", nil)
		return 0, false
	}
	return id, true
}
