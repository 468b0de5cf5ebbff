package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/storage"
)

// sendError writes the standard error body.
func sendError(c *gin.Context, status int, message string, err error) {
	body := dto.ErrorResponse{Error: message, Code: status}
	if err != nil {
		body.Message = err.Error()
	}
	c.JSON(status, body)
}

// notFoundOr maps storage.ErrNotFound to 404 and everything else to 500.
func notFoundOr(c *gin.Context, err error, what string) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(c, http.StatusNotFound, what+" not found", err)
		return
	}
	sendError(c, http.StatusInternalServerError, "storage failure", err)
}

// pagination reads limit/offset query parameters. Bad values fall back to
// the defaults rather than failing the request.
func pagination(c *gin.Context) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
