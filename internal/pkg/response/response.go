package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movira-app/movira-api/internal/pkg/apperr"
)

// ErrorResponse is the standard error payload returned by the API.
type ErrorResponse struct {
	Error  string            `json:"error" example:"Invalid token"`
	Code   string            `json:"code,omitempty" example:"AUTH_INVALID_TOKEN"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse is the standard success payload.
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// Success sends a 200 OK response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Created sends a 201 Created response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Error sends an error response with custom status code and message.
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// ValidationFailed sends a 422 with per-field error messages.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:  "Validation failed",
		Code:   "VALIDATION_FAILED",
		Fields: fields,
	})
}

func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// FromError maps a tagged error to its HTTP response. The message is the
// user-facing string; the wrapped cause never leaves the server.
func FromError(c *gin.Context, err error) {
	message := "Something went wrong. Please try again."
	var e *apperr.Error
	if errors.As(err, &e) && e.Message != "" {
		message = e.Message
	}

	switch apperr.KindOf(err) {
	case apperr.KindDuplicateIdentity:
		Conflict(c, message, "DUPLICATE_IDENTITY")
	case apperr.KindBadCredentials:
		Unauthorized(c, message, "BAD_CREDENTIALS")
	case apperr.KindNotAuthenticated:
		Unauthorized(c, message, "NOT_AUTHENTICATED")
	case apperr.KindDataUnavailable:
		NotFound(c, message, "DATA_UNAVAILABLE")
	case apperr.KindNotFound:
		NotFound(c, message, "NOT_FOUND")
	case apperr.KindConnectivity:
		ServiceUnavailable(c, message, "CONNECTIVITY")
	case apperr.KindUpstream:
		Error(c, http.StatusBadGateway, message, "UPSTREAM_FAILED")
	case apperr.KindValidation:
		BadRequest(c, message, "VALIDATION_FAILED")
	default:
		InternalServerError(c, message, "INTERNAL_ERROR")
	}
}
