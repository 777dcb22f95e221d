package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/response"
)

// Recovery is the final catch-all: a panicking handler becomes a 500 with a
// generic message.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "recovery").Logger()

	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		log.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", response.RequestID(c)).
			Msg("Unhandled panic")

		response.InternalError(c, err)
		c.Abort()
	})
}
