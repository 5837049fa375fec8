package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/lightbnb-api/internal/interface/http"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
)

// PropertyModule wires listing routes under /api:
// Public: GET /properties, GET /properties/text-search
// Protected: POST /properties, POST /properties/photos
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	Redis   *redis.Client
	Logger  *logrus.Logger
}

func NewPropertyModule(h *handlers.PropertyHandler, rdb *redis.Client, logger *logrus.Logger) *PropertyModule {
	return &PropertyModule{Handler: h, Redis: rdb, Logger: logger}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	rg.GET("/properties", m.Handler.List)
	rg.GET("/properties/text-search", m.Handler.TextSearch)

	auth := rg.Group("/properties")
	auth.Use(
		middleware.RequireSession(),
		middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUser(), nil, m.Logger),
	)
	{
		auth.POST("", m.Handler.Create)
		auth.POST("/photos", m.Handler.UploadPhoto)
	}
}
