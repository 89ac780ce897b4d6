package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/sarathi-app/sarathi/core"
	"github.com/sarathi-app/sarathi/core/attendance"
	"github.com/sarathi-app/sarathi/core/session"
	inmemdb "github.com/sarathi-app/sarathi/storage/database/inmem"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	in            *bufio.Scanner
	out           io.Writer
	sessionSvc    *session.Service
	attendanceSvc *attendance.Service
}

func newCommandLine(in io.Reader, out io.Writer) (*commandLine, error) {
	db, err := inmemdb.Open()
	if err != nil {
		return nil, err
	}
	repo := inmemdb.NewRegisterRepository(db)
	translator := core.NewTranslator()
	validate := core.NewValidator(translator)

	return &commandLine{
		in:            bufio.NewScanner(in),
		out:           out,
		sessionSvc:    session.NewService(validate, translator),
		attendanceSvc: attendance.NewService(repo, attendance.NewTextSink(out, "Attendance Manager"), validate, translator),
	}, nil
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -username USERNAME - open the workspace; the password will be prompted next")
}

func (cli *commandLine) printWorkspaceUsage() {
	fmt.Fprintln(cli.out, "Commands:")
	fmt.Fprintln(cli.out, "  add      add a subject")
	fmt.Fprintln(cli.out, "  list     show the attendance list")
	fmt.Fprintln(cli.out, "  summary  show overall attendance")
	fmt.Fprintln(cli.out, "  help     show this help")
	fmt.Fprintln(cli.out, "  quit     leave the workspace")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginCmd.SetOutput(cli.out)
	loginUname := loginCmd.String("username", "", "The username. The password will be prompted next.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}

		sess, err := cli.sessionSvc.Login(session.LoginRequest{Username: *loginUname, Password: string(pwd)})
		if err != nil {
			return err
		}
		return cli.workspace(sess)
	default:
		cli.printUsage()
		return errHelp
	}
}

// prompt prints label and reads one line of input. ok is false once input is exhausted.
func (cli *commandLine) prompt(label string) (line string, ok bool) {
	fmt.Fprint(cli.out, label)
	if !cli.in.Scan() {
		return "", false
	}
	return cli.in.Text(), true
}

func (cli *commandLine) printError(err error) {
	fmt.Fprintf(cli.out, "error: %v\n", errors.Cause(err))
}
