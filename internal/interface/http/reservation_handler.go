package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
	"github.com/oksasatya/lightbnb-api/pkg/response"
)

type ReservationService interface {
	List(ctx context.Context, guestID int64, limit int) ([]entity.GuestReservation, error)
}

type ReservationHandler struct {
	Svc    ReservationService
	Logger *logrus.Logger
}

func NewReservationHandler(svc ReservationService, logger *logrus.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

type listReservationsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

func (h *ReservationHandler) List(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c.Request.Context())
	var q listReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	rs, err := h.Svc.List(c.Request.Context(), sess.UserID, q.Limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]reservationJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationJSON(r))
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": out})
}
