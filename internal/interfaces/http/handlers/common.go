// Package handlers implements the HTTP endpoints of the dashboard API.
package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reachlab/geodash/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors to HTTP status codes. Internal
// details are masked; clients get the code and a safe message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.IsCode(err, errors.ErrCodeSnapshotNotReady),
		errors.IsCode(err, errors.ErrCodeServiceUnavailable):
		writeError(c, http.StatusServiceUnavailable, err)
	case errors.IsNotFound(err):
		writeError(c, http.StatusNotFound, err)
	case errors.IsValidation(err):
		writeError(c, http.StatusBadRequest, err)
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    string(errors.ErrCodeInternal),
			Message: "internal server error",
		})
	}
}

func writeError(c *gin.Context, status int, err error) {
	resp := ErrorResponse{Code: string(errors.GetCode(err))}
	var ae *errors.AppError
	if stderrors.As(err, &ae) {
		resp.Message = ae.Message
	} else {
		resp.Message = err.Error()
	}
	c.JSON(status, resp)
}
