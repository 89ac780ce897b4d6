package attendance

import "math"

// Register is the ordered list of subjects tracked during a session.
// A Register value is never modified in place; AddSubject returns a new one.
type Register struct {
	subjects []Subject
}

// NewRegister builds a Register holding subjects, in order.
func NewRegister(subjects ...Subject) Register {
	return Register{subjects: append([]Subject(nil), subjects...)}
}

func (r Register) Len() int { return len(r.subjects) }

// Subjects returns a copy of the subjects in insertion order.
func (r Register) Subjects() []Subject {
	return append(make([]Subject, 0, len(r.subjects)), r.subjects...)
}

// With returns a new Register with s appended. r is left untouched.
func (r Register) With(s Subject) Register {
	subjects := make([]Subject, len(r.subjects), len(r.subjects)+1)
	copy(subjects, r.subjects)
	return Register{subjects: append(subjects, s)}
}

// Summary totals the classes of all subjects.
// Totals saturate at the int64 bounds; the percentage is computed from float64 sums so it never wraps.
func (r Register) Summary() Summary {
	sum := Summary{Subjects: len(r.subjects)}
	var total, attended float64
	for _, s := range r.subjects {
		sum.TotalClasses = addCount(sum.TotalClasses, int64(s.TotalClasses))
		sum.AttendedClasses = addCount(sum.AttendedClasses, int64(s.AttendedClasses))
		total += float64(s.TotalClasses)
		attended += float64(s.AttendedClasses)
	}
	if total > 0 {
		sum.AttendancePercentage = (attended / total) * 100
	}
	return sum
}

func addCount(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// AddSubject is the add-subject command: it returns the new Register and the added Subject.
// On error r is returned as is.
func AddSubject(r Register, ns NewSubject) (Register, Subject, error) {
	s, err := ns.Parse()
	if err != nil {
		return r, Subject{}, err
	}
	return r.With(s), s, nil
}
