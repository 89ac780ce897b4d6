package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sarathi-app/sarathi/core"
	"github.com/sarathi-app/sarathi/core/attendance"
	"github.com/sarathi-app/sarathi/core/session"
)

// workspace runs the attendance manager until the user quits or input ends.
func (cli *commandLine) workspace(sess session.Session) error {
	fmt.Fprintf(cli.out, "Welcome, %s!\n", sess.Username)
	cli.printWorkspaceUsage()
	if err := cli.attendanceSvc.Render(); err != nil {
		return err
	}

	for {
		line, ok := cli.prompt("> ")
		if !ok {
			return cli.in.Err()
		}

		switch core.CleanString(line, true /* lower */) {
		case "":
		case "add":
			if err := cli.addSubject(); err != nil {
				return err
			}
		case "list":
			if err := cli.attendanceSvc.Render(); err != nil {
				return err
			}
		case "summary":
			if err := cli.printSummary(); err != nil {
				return err
			}
		case "help":
			cli.printWorkspaceUsage()
		case "quit", "exit":
			fmt.Fprintln(cli.out, "Bye!")
			return nil
		default:
			fmt.Fprintf(cli.out, "unknown command %q, type help\n", core.CleanString(line))
		}
	}
}

// addSubject reads the add-subject form. Input errors are shown and the loop carries on.
func (cli *commandLine) addSubject() error {
	var ns attendance.NewSubject
	fields := []struct {
		label string
		dst   *string
	}{
		{label: "Subject Name: ", dst: &ns.Name},
		{label: "Total Classes: ", dst: &ns.TotalClasses},
		{label: "Attended Classes: ", dst: &ns.AttendedClasses},
	}
	for _, fld := range fields {
		val, ok := cli.prompt(fld.label)
		if !ok {
			return cli.in.Err()
		}
		*fld.dst = val
	}

	if _, err := cli.attendanceSvc.AddSubject(ns); err != nil {
		if core.IsInputError(err) {
			cli.printError(err)
			return nil
		}
		return errors.Wrap(err, "adding subject")
	}
	return nil
}

func (cli *commandLine) printSummary() error {
	sum, err := cli.attendanceSvc.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Subjects: %d | Total: %d | Attended: %d | Attendance: %s%%\n",
		sum.Subjects, sum.TotalClasses, sum.AttendedClasses, attendance.FormatPercentage(sum.AttendancePercentage))
	return nil
}
