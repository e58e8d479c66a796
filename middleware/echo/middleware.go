package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	skemap "github.com/reoring/skemap"
	"github.com/reoring/skemap/middleware"
)

// ValidateJSON decodes the request body as typeName, stores the result in
// the request context on success, or returns 400 with Issues when the body
// is invalid.
func ValidateJSON(e *skemap.Engine, typeName string, opt skemap.ParseOpt) echo.MiddlewareFunc {
	if opt == (skemap.ParseOpt{}) {
		opt = middleware.DefaultParseOpt()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := middleware.Decode(e, typeName, c.Request().Body, opt)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			}
			ctx := middleware.ContextWithDecoded(c.Request().Context(), d)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// Bind converts the decoded body of c into T.
func Bind[T any](c echo.Context) (T, error) {
	return middleware.Bind[T](c.Request().Context())
}
