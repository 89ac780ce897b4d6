package session

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sarathi-app/sarathi/core"
)

var NowFunc = time.Now // mockable

type Service struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewService(validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{validate: validate, translator: translator}
}

// Login opens a Session for any non-empty username and password.
// A blank field fails with a *core.EmptyFieldError, username first.
func (svc *Service) Login(lr LoginRequest) (Session, error) {
	lr.Username = core.CleanString(lr.Username)
	if err := core.CheckStruct(svc.validate, svc.translator, lr); err != nil {
		return Session{}, err
	}
	return Session{
		ID:        uuid.New().String(),
		Username:  lr.Username,
		StartedAt: NowFunc().UTC(),
	}, nil
}
