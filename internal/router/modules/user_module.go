package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/lightbnb-api/internal/interface/http"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
)

// UserModule wires account routes at the root:
// POST /users, POST /users/login, POST /users/logout, GET /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
	Allow   middleware.AllowFunc
	Logger  *logrus.Logger
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, allow middleware.AllowFunc, logger *logrus.Logger) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, Allow: allow, Logger: logger}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), m.Allow, m.Logger) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), m.Allow, m.Logger)  // 10 req/min per IP

	users := rg.Group("/users")
	users.POST("", signupLimiter, m.Handler.Signup)
	users.POST("/login", loginLimiter, m.Handler.Login)
	users.POST("/logout", m.Handler.Logout)
	users.GET("/me", m.Handler.Me)
}
