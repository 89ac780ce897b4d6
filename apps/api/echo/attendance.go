package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sarathi-app/sarathi/core/attendance"
	"github.com/sarathi-app/sarathi/core/session"
)

type attendanceApi struct {
	svc  *attendance.Service
	view *attendance.View
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *attendance.Service, view *attendance.View) {
	api := attendanceApi{svc: svc, view: view}

	ag := g.Group("/attendance", jwt, sessionMiddleware())
	ag.GET("", api.show)
	ag.POST("/subjects", api.addSubject)
}

// Handlers

func (api *attendanceApi) show(ctx echo.Context) error {
	resp, err := api.workspace(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *attendanceApi) addSubject(ctx echo.Context) error {
	var data attendance.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}

	s, err := api.svc.AddSubject(data)
	if err != nil {
		return errors.Wrap(err, "adding subject")
	}

	resp, err := api.workspace(ctx)
	if err != nil {
		return err
	}
	resp.Added = &s
	return ctx.JSON(http.StatusCreated, resp)
}

// workspace reads what the view last showed, i.e. the register as of its last mutation.
func (api *attendanceApi) workspace(ctx echo.Context) (WorkspaceResponse, error) {
	sess, err := getContextSession(ctx)
	if err != nil {
		return WorkspaceResponse{}, errors.Wrap(err, "getting context session")
	}
	summary, err := api.svc.Summary()
	if err != nil {
		return WorkspaceResponse{}, errors.Wrap(err, "summarizing register")
	}
	return WorkspaceResponse{
		Session:  sess,
		Subjects: api.view.Subjects(),
		Lines:    api.view.Lines(),
		Summary:  summary,
	}, nil
}

type WorkspaceResponse struct {
	Session  session.Session      `json:"session"`
	Added    *attendance.Subject  `json:"added,omitempty"`
	Subjects []attendance.Subject `json:"subjects"`
	Lines    []string             `json:"lines"`
	Summary  attendance.Summary   `json:"summary"`
}
