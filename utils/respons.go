package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostline/host-stand/floor"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondEngineError maps the engine's error kinds onto HTTP codes: bad
// input 400, unknown target 404, roster full or illegal table move 409.
func RespondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, floor.ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, floor.ErrNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, floor.ErrCapacityExceeded), errors.Is(err, floor.ErrInvalidTransition):
		RespondError(c, http.StatusConflict, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}
