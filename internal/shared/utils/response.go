package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskline/internal/shared/errors"
)

// ListResponse is the paginated list envelope returned by list endpoints.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	TotalItems int64       `json:"totalItems"`
}

// ErrorBody is the structured error payload: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKResponse sends a 200 with the given payload as-is.
func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ListSuccessResponse sends a paginated list response.
func ListSuccessResponse(c *gin.Context, items interface{}, totalItems int64, page, limit int) {
	c.JSON(http.StatusOK, ListResponse{
		Items:      items,
		Page:       page,
		TotalPages: TotalPages(totalItems, limit),
		TotalItems: totalItems,
	})
}

// ErrorResponse sends an error response with a custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError sends an error response based on error type.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}
	// For non-AppError, do not expose internal error details to prevent information leakage
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error occurred"})
}
