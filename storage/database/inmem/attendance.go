package inmemdb

import (
	"github.com/sarathi-app/sarathi/core/attendance"
)

type registerRepository struct {
	db *registerTable
}

var _ attendance.Repository = (*registerRepository)(nil)

func NewRegisterRepository(db *DB) attendance.Repository {
	return &registerRepository{db: db.register}
}

func (repo *registerRepository) LoadRegister() (attendance.Register, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.reg, nil
}

func (repo *registerRepository) StoreRegister(reg attendance.Register) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.reg = reg
	return nil
}
