package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
	"github.com/oksasatya/lightbnb-api/pkg/response"
	"github.com/oksasatya/lightbnb-api/pkg/validation"
)

// writeError maps err to its status and writes the error envelope.
// Only validation messages reach the client verbatim; 5xx are logged.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError && logger != nil {
		helpers.RequestLogger(logger, c).WithError(err).WithField("status", status).Error("request failed")
	}
	response.Error(c, status, publicMessage(status, err), nil)
}

func publicMessage(status int, err error) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusUnauthorized:
		return apperr.ErrInvalidCredentials.Error()
	case http.StatusNotFound:
		return apperr.ErrNotFound.Error()
	case http.StatusConflict:
		return apperr.ErrConflict.Error()
	case http.StatusServiceUnavailable:
		return apperr.ErrUnavailable.Error()
	case http.StatusGatewayTimeout:
		return "request timed out"
	default:
		return "internal server error"
	}
}

func bindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
