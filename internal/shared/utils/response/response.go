package response

import "github.com/gin-gonic/gin"

// Envelope is the JSON shape shared by middleware-level responses.
// Domain handlers render their own bodies; this keeps the outer layers
// (auth, rate limiting) uniform.
type Envelope struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{
		Status:     "error",
		StatusCode: code,
		Message:    message,
	})
}

func ErrorWithDetails(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Envelope{
		Status:     "error",
		StatusCode: code,
		Message:    message,
		Errors:     details,
	})
}
