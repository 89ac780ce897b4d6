package dig_container

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/sarathi-app/sarathi/apps/api/echo"
	"github.com/sarathi-app/sarathi/core"
	"github.com/sarathi-app/sarathi/core/attendance"
	"github.com/sarathi-app/sarathi/core/session"
	logsvc "github.com/sarathi-app/sarathi/services/logger"
	inmemdb "github.com/sarathi-app/sarathi/storage/database/inmem"
)

type ServerParams struct {
	dig.In

	Conf          *core.Config
	Logger        core.Logger
	SessionSvc    *session.Service
	AttendanceSvc *attendance.Service
	View          *attendance.View
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newValidator(translator ut.Translator) *validator.Validate {
	return core.NewValidator(translator)
}

func newDB() (*inmemdb.DB, error) {
	return inmemdb.Open()
}

func newAttendanceService(
	db *inmemdb.DB,
	view *attendance.View,
	validate *validator.Validate,
	translator ut.Translator,
) *attendance.Service {
	return attendance.NewService(inmemdb.NewRegisterRepository(db), view, validate, translator)
}

func newServer(p ServerParams) *echoapi.Server {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	return echoapi.NewServer(p.Conf, shutdown, &echoapi.Deps{
		Logger:        p.Logger,
		SessionSvc:    p.SessionSvc,
		AttendanceSvc: p.AttendanceSvc,
		View:          p.View,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newDB))
	must(c.Provide(attendance.NewView))
	must(c.Provide(newAttendanceService))
	must(c.Provide(session.NewService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
