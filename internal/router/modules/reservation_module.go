package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/lightbnb-api/internal/interface/http"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
)

// ReservationModule wires GET /reservations (protected) under /api.
type ReservationModule struct {
	Handler *handlers.ReservationHandler
}

func NewReservationModule(h *handlers.ReservationHandler) *ReservationModule {
	return &ReservationModule{Handler: h}
}

func (m *ReservationModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reservations", middleware.RequireSession(), m.Handler.List)
}
