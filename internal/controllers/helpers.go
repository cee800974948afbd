package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (int, bool) {
	raw, ok := ctx.Params.Get(name)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requestLog returns a log entry tagged with the current request ID
func requestLog(ctx *gin.Context) *log.Entry {
	return log.WithField("request_id", middleware.GetRequestID(ctx))
}

// respondInternalError logs err and answers with a 500 APIError
func respondInternalError(ctx *gin.Context, message string, err error) {
	requestLog(ctx).WithError(err).Error(message)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, message))
}

func respondRestaurantNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
}

func respondValidationErrors(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Errors: []string{models.MsgValidationErrors}})
}
