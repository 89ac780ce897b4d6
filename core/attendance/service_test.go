package attendance

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/sarathi-app/sarathi/core"
)

type memRepository struct {
	reg      Register
	loadErr  error
	storeErr error
	stores   int
}

func (repo *memRepository) LoadRegister() (Register, error) { return repo.reg, repo.loadErr }

func (repo *memRepository) StoreRegister(reg Register) error {
	if repo.storeErr != nil {
		return repo.storeErr
	}
	repo.stores++
	repo.reg = reg
	return nil
}

// recordingSink keeps every rendering it was shown.
type recordingSink struct {
	renders [][]string
}

func (rs *recordingSink) Show(subjects []Subject) error {
	rs.renders = append(rs.renders, Render(subjects))
	return nil
}

func newTestService(repo Repository, sink Sink) *Service {
	translator := core.NewTranslator()
	return NewService(repo, sink, core.NewValidator(translator), translator)
}

func TestService_AddSubject(t *testing.T) {
	repo := new(memRepository)
	sink := new(recordingSink)
	svc := newTestService(repo, sink)

	s, err := svc.AddSubject(NewSubject{Name: "Math", TotalClasses: "20", AttendedClasses: "18"})
	if err != nil {
		t.Fatalf("AddSubject() unexpected error = %v", err)
	}
	if want := (Subject{Name: "Math", TotalClasses: 20, AttendedClasses: 18}); s != want {
		t.Errorf("AddSubject() = %+v; want %+v", s, want)
	}
	if _, err := svc.AddSubject(NewSubject{Name: "Art", TotalClasses: "4", AttendedClasses: "1"}); err != nil {
		t.Fatalf("AddSubject() unexpected error = %v", err)
	}

	// every mutation triggers a full, ordered re-render
	want := [][]string{
		{"Math | Total: 20 | Attended: 18 | Attendance: 90.0%"},
		{
			"Math | Total: 20 | Attended: 18 | Attendance: 90.0%",
			"Art | Total: 4 | Attended: 1 | Attendance: 25.0%",
		},
	}
	if diff := cmp.Diff(want, sink.renders); diff != "" {
		t.Errorf("renders mismatch (-want +got):\n%s", diff)
	}

	if subjects := repo.reg.Subjects(); len(subjects) != 2 || subjects[0].Name != "Math" || subjects[1].Name != "Art" {
		t.Errorf("stored subjects = %+v; want [Math Art]", subjects)
	}

	sum, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Subjects != 2 || sum.TotalClasses != 24 || sum.AttendedClasses != 19 {
		t.Errorf("Summary() = %+v; want 2 subjects, 24 classes, 19 attended", sum)
	}
	if want := 19.0 / 24.0 * 100; math.Abs(sum.AttendancePercentage-want) > 1e-9 {
		t.Errorf("Summary().AttendancePercentage = %v; want %v", sum.AttendancePercentage, want)
	}
}

func TestService_AddSubject_RejectedInputDoesNotRender(t *testing.T) {
	tests := []struct {
		name  string
		input NewSubject
	}{
		{name: "zero total", input: NewSubject{Name: "Math", TotalClasses: "0", AttendedClasses: "0"}},
		{name: "non-numeric total", input: NewSubject{Name: "Math", TotalClasses: "abc", AttendedClasses: "1"}},
		{name: "blank name", input: NewSubject{Name: " ", TotalClasses: "3", AttendedClasses: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepository{reg: NewRegister(Subject{Name: "History", TotalClasses: 5, AttendedClasses: 5})}
			sink := new(recordingSink)
			svc := newTestService(repo, sink)

			if _, err := svc.AddSubject(tt.input); !core.IsInputError(err) {
				t.Fatalf("AddSubject() error = %v; want an input error", err)
			}
			if repo.stores != 0 {
				t.Errorf("register stored %d times; want 0", repo.stores)
			}
			if len(sink.renders) != 0 {
				t.Errorf("sink rendered %d times; want 0", len(sink.renders))
			}
			if repo.reg.Len() != 1 {
				t.Errorf("register len = %d; want 1", repo.reg.Len())
			}
		})
	}
}

func TestService_AddSubject_BlankNameIsEmptyField(t *testing.T) {
	svc := newTestService(new(memRepository), new(recordingSink))

	_, err := svc.AddSubject(NewSubject{Name: "", TotalClasses: "3", AttendedClasses: "1"})
	var emptyErr *core.EmptyFieldError
	if !errors.As(err, &emptyErr) || emptyErr.Field != "name" {
		t.Errorf("AddSubject() error = %v; want EmptyFieldError on name", err)
	}
}

func TestService_StorageErrors(t *testing.T) {
	boom := errors.New("boom")

	svc := newTestService(&memRepository{loadErr: boom}, new(recordingSink))
	if _, err := svc.AddSubject(NewSubject{Name: "Math", TotalClasses: "2", AttendedClasses: "1"}); errors.Cause(err) != boom {
		t.Errorf("AddSubject() error = %v; want cause %v", err, boom)
	}
	if err := svc.Render(); errors.Cause(err) != boom {
		t.Errorf("Render() error = %v; want cause %v", err, boom)
	}

	sink := new(recordingSink)
	svc = newTestService(&memRepository{storeErr: boom}, sink)
	if _, err := svc.AddSubject(NewSubject{Name: "Math", TotalClasses: "2", AttendedClasses: "1"}); errors.Cause(err) != boom {
		t.Errorf("AddSubject() error = %v; want cause %v", err, boom)
	}
	if len(sink.renders) != 0 {
		t.Errorf("sink rendered %d times after a failed store; want 0", len(sink.renders))
	}
}

func TestService_AddSubject_SinkFailureRestoresRegister(t *testing.T) {
	sinkDown := errors.New("sink down")
	orig := []Subject{{Name: "History", TotalClasses: 5, AttendedClasses: 5}}
	repo := &memRepository{reg: NewRegister(orig...)}
	var shown int
	svc := newTestService(repo, SinkFunc(func(subjects []Subject) error {
		shown++
		return sinkDown
	}))

	s, err := svc.AddSubject(NewSubject{Name: "Math", TotalClasses: "20", AttendedClasses: "18"})
	if errors.Cause(err) != sinkDown {
		t.Fatalf("AddSubject() error = %v; want cause %v", err, sinkDown)
	}
	if s != (Subject{}) {
		t.Errorf("AddSubject() = %+v; want zero Subject on error", s)
	}
	if shown != 1 {
		t.Errorf("sink called %d times; want 1", shown)
	}
	if diff := cmp.Diff(orig, repo.reg.Subjects()); diff != "" {
		t.Errorf("register not restored (-want +got):\n%s", diff)
	}

	// the next add starts from the restored register
	svc.sink = new(recordingSink)
	if _, err := svc.AddSubject(NewSubject{Name: "Art", TotalClasses: "4", AttendedClasses: "1"}); err != nil {
		t.Fatalf("AddSubject() unexpected error = %v", err)
	}
	if got := repo.reg.Len(); got != 2 {
		t.Errorf("register len = %d; want 2", got)
	}
}

func TestService_Render(t *testing.T) {
	repo := &memRepository{reg: NewRegister(
		Subject{Name: "A", TotalClasses: 2, AttendedClasses: 1},
		Subject{Name: "B", TotalClasses: 2, AttendedClasses: 2},
	)}
	var shown [][]Subject
	svc := newTestService(repo, SinkFunc(func(subjects []Subject) error {
		shown = append(shown, subjects)
		return nil
	}))

	if err := svc.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if diff := cmp.Diff([][]Subject{repo.reg.Subjects()}, shown); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
