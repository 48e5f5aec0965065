package utils

import "github.com/gin-gonic/gin"

// ErrorResponse is the JSON body returned for every failing request:
// {"error": "...", "message": "..."} with message optional.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error writes an error response with only the error field set.
func Error(c *gin.Context, status int, errMsg string) {
	c.JSON(status, ErrorResponse{Error: errMsg})
}

// ErrorWithMessage writes an error response with a detail message alongside
// the machine-readable error field.
func ErrorWithMessage(c *gin.Context, status int, errMsg, message string) {
	c.JSON(status, ErrorResponse{Error: errMsg, Message: message})
}

// Pagination holds pagination metadata for list responses.
type Pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPagination computes pagination metadata. pages = ceil(total/limit),
// which is 0 when total is 0.
func NewPagination(total, page, limit int) Pagination {
	// safety defaults
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return Pagination{
		Total: total,
		Pages: (total + limit - 1) / limit,
		Page:  page,
		Limit: limit,
	}
}
