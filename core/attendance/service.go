package attendance

import (
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/sarathi-app/sarathi/core"
)

type (
	// Repository holds the session's Register.
	Repository interface {
		LoadRegister() (Register, error)
		StoreRegister(reg Register) error
	}

	// Service owns the session's Register and keeps its Sink in step with it.
	Service struct {
		mu         sync.Mutex
		repo       Repository
		sink       Sink
		validate   *validator.Validate
		translator ut.Translator
	}
)

func NewService(repo Repository, sink Sink, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{
		repo:       repo,
		sink:       sink,
		validate:   validate,
		translator: translator,
	}
}

// AddSubject appends a new Subject to the Register then re-renders the Sink.
// Nothing is stored or rendered when the input is rejected; if the Sink fails the previous Register is restored.
func (svc *Service) AddSubject(ns NewSubject) (Subject, error) {
	if err := core.CheckStruct(svc.validate, svc.translator, ns); err != nil {
		return Subject{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	prev, err := svc.repo.LoadRegister()
	if err != nil {
		return Subject{}, errors.Wrap(err, "loading register")
	}
	reg, s, err := AddSubject(prev, ns)
	if err != nil {
		return Subject{}, err
	}
	if err := svc.repo.StoreRegister(reg); err != nil {
		return Subject{}, errors.Wrap(err, "storing register")
	}
	if err := svc.sink.Show(reg.Subjects()); err != nil {
		// the Sink still shows prev, so the Register goes back to it
		if rErr := svc.repo.StoreRegister(prev); rErr != nil {
			return Subject{}, errors.Wrapf(err, "rendering register (restoring previous register: %v)", rErr)
		}
		return Subject{}, errors.Wrap(err, "rendering register")
	}
	return s, nil
}

// Render shows the whole current Register on the Sink.
func (svc *Service) Render() error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	reg, err := svc.repo.LoadRegister()
	if err != nil {
		return errors.Wrap(err, "loading register")
	}
	return errors.Wrap(svc.sink.Show(reg.Subjects()), "rendering register")
}

func (svc *Service) Summary() (Summary, error) {
	reg, err := svc.load()
	if err != nil {
		return Summary{}, err
	}
	return reg.Summary(), nil
}

func (svc *Service) load() (Register, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	reg, err := svc.repo.LoadRegister()
	return reg, errors.Wrap(err, "loading register")
}
