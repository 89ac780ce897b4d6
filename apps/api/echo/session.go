package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sarathi-app/sarathi/core"
	"github.com/sarathi-app/sarathi/core/session"
)

type sessionApi struct {
	conf *core.Config
	svc  *session.Service
}

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc, conf *core.Config, svc *session.Service) {
	api := sessionApi{conf: conf, svc: svc}

	sg := g.Group("/session")
	sg.POST("/login", api.login)
	sg.POST("/token-refresh", api.refreshToken, jwt, sessionMiddleware())
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	var data session.LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}

	sess, err := api.svc.Login(data)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, GetSessionClaims(api.conf, sess))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Session: sess})
}

func (api *sessionApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx, api.conf)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Session: sess})
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}
