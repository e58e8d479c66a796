package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	skemap "github.com/reoring/skemap"
	"github.com/reoring/skemap/middleware"
)

// ValidateJSON decodes the incoming JSON as typeName with opt (or
// DefaultParseOpt when zero), stores the result in the request context, and
// on failure aborts with 400 and the Issues payload.
func ValidateJSON(e *skemap.Engine, typeName string, opt skemap.ParseOpt) gin.HandlerFunc {
	if opt == (skemap.ParseOpt{}) {
		opt = middleware.DefaultParseOpt()
	}
	return func(c *gin.Context) {
		d, err := middleware.Decode(e, typeName, c.Request.Body, opt)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithDecoded(c.Request.Context(), d))
		c.Next()
	}
}

// Bind converts the decoded body of c into T.
func Bind[T any](c *gin.Context) (T, error) {
	return middleware.Bind[T](c.Request.Context())
}
