package attendance

import (
	"encoding/json"
	"strconv"

	"github.com/sarathi-app/sarathi/core"
)

// Subject is one tracked subject. It is immutable once created.
type Subject struct {
	Name            string
	TotalClasses    int
	AttendedClasses int
}

// AttendancePercentage is recomputed on every read so it can never go stale.
func (s Subject) AttendancePercentage() float64 {
	if s.TotalClasses == 0 {
		return 0
	}
	return (float64(s.AttendedClasses) / float64(s.TotalClasses)) * 100
}

func (s Subject) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name                 string  `json:"name"`
		TotalClasses         int     `json:"total_classes"`
		AttendedClasses      int     `json:"attended_classes"`
		AttendancePercentage float64 `json:"attendance_percentage"`
	}{
		Name:                 s.Name,
		TotalClasses:         s.TotalClasses,
		AttendedClasses:      s.AttendedClasses,
		AttendancePercentage: s.AttendancePercentage(),
	})
}

// NewSubject contains the form input needed to add a Subject. Counts arrive as text.
type NewSubject struct {
	Name            string `json:"name" validate:"notblank"`
	TotalClasses    string `json:"total_classes"`
	AttendedClasses string `json:"attended_classes"`
}

// Parse turns the form input into a Subject.
// Fields are checked in form order: name, total classes, attended classes; then total classes must be at least 1.
func (ns NewSubject) Parse() (Subject, error) {
	name := core.CleanString(ns.Name)
	if name == "" {
		return Subject{}, core.NewEmptyFieldError("name")
	}
	total, err := parseCount("total_classes", ns.TotalClasses)
	if err != nil {
		return Subject{}, err
	}
	attended, err := parseCount("attended_classes", ns.AttendedClasses)
	if err != nil {
		return Subject{}, err
	}

	switch {
	case total == 0:
		return Subject{}, core.NewDivisionByZeroError("total_classes")
	case total < 0:
		return Subject{}, core.NewValidationError(nil, core.MinValueFieldError("total_classes"))
	}
	return Subject{Name: name, TotalClasses: total, AttendedClasses: attended}, nil
}

// parseCount reads a class count. Counts are 32-bit: larger values fail to parse.
func parseCount(field, text string) (int, error) {
	text = core.CleanString(text)
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, core.NewParseError(field, text, err)
	}
	return int(n), nil
}

// Summary aggregates a Register.
type Summary struct {
	Subjects             int     `json:"subjects"`
	TotalClasses         int64   `json:"total_classes"`
	AttendedClasses      int64   `json:"attended_classes"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
