package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carenotify/internal/config"
	"carenotify/internal/domain"
	"carenotify/internal/http/dto"
	"carenotify/internal/http/resp"
	"carenotify/internal/service/notify"
	"carenotify/internal/service/session"
)

type Handler struct {
	cfg     *config.Config
	svc     *notify.Service
	session *session.Gateway
	log     *zap.Logger
}

func NewHandler(cfg *config.Config, svc *notify.Service, gateway *session.Gateway, logger *zap.Logger) *Handler {
	return &Handler{cfg: cfg, svc: svc, session: gateway, log: logger}
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	if !h.session.Login(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: "username and password are required"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		Code:    resp.CodeLoggedIn,
		Message: fmt.Sprintf("user %s logged in successfully", req.Username),
	})
}

// CreateNotification is the producer side and is not session-gated.
// Title and content are opaque text; empty values are accepted.
func (h *Handler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		h.log.Error("create notification failed",
			zap.String("title", req.Title),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListNotifications(c *gin.Context) {
	if !h.session.LoggedIn() {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: "please log in first"})
		return
	}
	c.JSON(http.StatusOK, h.session.CheckNotifications(c.Request.Context()))
}

func (h *Handler) ViewNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "id must be an integer"})
		return
	}

	viewed, err := h.session.ViewNotification(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: "please log in first"})
	case errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: fmt.Sprintf("no notification found with id %d", id)})
	case err != nil:
		h.log.Error("view notification failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to view notification"})
	default:
		c.JSON(http.StatusOK, viewed)
	}
}
