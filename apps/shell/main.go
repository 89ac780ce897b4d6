package main

import (
	"log"
	"os"

	"github.com/sarathi-app/sarathi/core"
	logsvc "github.com/sarathi-app/sarathi/services/logger"
)

var logger core.Logger

func main() {
	conf := core.NewConfig()
	rollbarLogger := logsvc.NewRollbarLogger(log.New(os.Stderr, "SHELL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	rollbarLogger.Enable(!conf.Debug)
	logger = rollbarLogger

	cli, err := newCommandLine(os.Stdin, os.Stdout)
	errAndDie(err)

	if err := cli.run(os.Args); err != nil {
		switch {
		case err == errHelp:
		case core.IsInputError(err):
			// e.g. a blank login field: no workspace is opened
			cli.printError(err)
		default:
			logger.Error("shell stopped", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
