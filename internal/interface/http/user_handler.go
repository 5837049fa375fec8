package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/internal/application"
	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
	"github.com/oksasatya/lightbnb-api/pkg/response"
)

type UserService interface {
	Signup(ctx context.Context, in application.SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	CurrentUser(ctx context.Context, id int64) (*entity.User, error)
}

type SessionService interface {
	Start(ctx context.Context, userID int64) (string, time.Time, error)
	End(ctx context.Context, token string) error
}

type UserHandler struct {
	Svc      UserService
	Sessions SessionService
	Logger   *logrus.Logger
	Cookies  *helpers.Manager
}

func NewUserHandler(svc UserService, sessions SessionService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Sessions: sessions, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,pwd,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{Name: req.Name, Email: req.Email, Password: req.Password})
	if errors.Is(err, apperr.ErrConflict) {
		response.Error(c, http.StatusConflict, "email already registered", nil)
		return
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if !h.startSession(c, u.ID) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": toUserJSON(u)})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if !h.startSession(c, u.ID) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserJSON(u)})
}

func (h *UserHandler) startSession(c *gin.Context, userID int64) bool {
	token, exp, err := h.Sessions.Start(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.Logger, err)
		return false
	}
	h.Cookies.SetSession(c, token, exp)
	return true
}

// Logout always succeeds; a failed server-side delete is only logged.
func (h *UserHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookie); err == nil && token != "" {
		if err := h.Sessions.End(c.Request.Context(), token); err != nil && h.Logger != nil {
			helpers.RequestLogger(h.Logger, c).WithError(err).Warn("end session failed")
		}
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *UserHandler) Me(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c.Request.Context())
	if !ok {
		response.Message(c, http.StatusUnauthorized, "not logged in")
		return
	}
	u, err := h.Svc.CurrentUser(c.Request.Context(), sess.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "no user with that id", nil)
		return
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserJSON(u)})
}
