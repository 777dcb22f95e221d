package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyExposeDetail marks requests whose 500 responses may carry error text.
const ContextKeyExposeDetail = "expose_error_detail"

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Success   bool              `json:"success"`
	Code      ErrCode           `json:"code"`
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Detail    string            `json:"detail,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends body with "success": true merged in.
func Success(c *gin.Context, statusCode int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(statusCode, body)
}

// Message sends a success response carrying only a message.
func Message(c *gin.Context, statusCode int, message string) {
	Success(c, statusCode, gin.H{"message": message})
}

// List sends items as a bare JSON array; an empty result is [] rather than null.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(200, items)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, build(c, code))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	body := build(c, code)
	body.Fields = fields
	c.JSON(statusCode, body)
}

// FailWithDetail sends an error response; err's text is attached only when
// expose is set (development).
func FailWithDetail(c *gin.Context, statusCode int, code ErrCode, err error, expose bool) {
	body := build(c, code)
	if expose && err != nil {
		body.Detail = err.Error()
	}
	c.JSON(statusCode, body)
}

// InternalError records err on the context for the request logger and sends
// a generic 500. The error text is attached when ErrorDetail(true) is in the chain.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	FailWithDetail(c, http.StatusInternalServerError, ErrInternal, err, c.GetBool(ContextKeyExposeDetail))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, build(c, code))
}

// ErrorDetail sets whether InternalError echoes error text. Enabled in development only.
func ErrorDetail(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyExposeDetail, expose)
		c.Next()
	}
}

func build(c *gin.Context, code ErrCode) ErrorBody {
	return ErrorBody{
		Success:   false,
		Code:      code,
		Error:     GetMessage(code),
		RequestID: RequestID(c),
	}
}
