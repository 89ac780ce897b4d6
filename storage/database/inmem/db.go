package inmemdb

import (
	"sync"

	"github.com/sarathi-app/sarathi/core/attendance"
)

type (
	// DB lives as long as the process; nothing is written to disk.
	DB struct {
		register *registerTable
	}

	registerTable struct {
		sync.RWMutex
		reg attendance.Register
	}
)

func Open() (*DB, error) {
	db := &DB{
		register: &registerTable{reg: attendance.NewRegister()},
	}
	return db, nil
}
