package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionMiddleware loads the session.Session carried by the JWT into the echo.Context.
func sessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := getContextSession(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context session")
			}
			if sess.ID == "" {
				return errUnauthorized
			}
			return next(ctx)
		}
	}
}
