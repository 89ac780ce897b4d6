package attendance

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// FormatPercentage prints p with the fewest digits that read back to the same value,
// always keeping a fractional part: 90 -> "90.0", 2/3*100 -> "66.66666666666666".
func FormatPercentage(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// RenderLine renders a single subject row.
func RenderLine(s Subject) string {
	return fmt.Sprintf("%s | Total: %d | Attended: %d | Attendance: %s%%",
		s.Name, s.TotalClasses, s.AttendedClasses, FormatPercentage(s.AttendancePercentage()))
}

// Render renders every subject, one line each, in order.
func Render(subjects []Subject) []string {
	lines := make([]string, 0, len(subjects))
	for _, s := range subjects {
		lines = append(lines, RenderLine(s))
	}
	return lines
}

// WriteTo writes the rendered subjects to w, one per line.
func WriteTo(w io.Writer, subjects []Subject) error {
	for _, line := range Render(subjects) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Sink is a display target for the register.
// Show always receives the full ordered list and replaces whatever was shown before.
type Sink interface {
	Show(subjects []Subject) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(subjects []Subject) error

func (f SinkFunc) Show(subjects []Subject) error { return f(subjects) }

// View keeps the last rendering in memory, for shells that display on request.
type View struct {
	mu       sync.RWMutex
	subjects []Subject
	lines    []string
}

var _ Sink = (*View)(nil)

func NewView() *View {
	return &View{subjects: []Subject{}, lines: []string{}}
}

func (v *View) Show(subjects []Subject) error {
	subjects = append(make([]Subject, 0, len(subjects)), subjects...)
	lines := Render(subjects)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.subjects = subjects
	v.lines = lines
	return nil
}

// Lines returns a copy of the rendered lines.
func (v *View) Lines() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append(make([]string, 0, len(v.lines)), v.lines...)
}

// Subjects returns a copy of the subjects last shown.
func (v *View) Subjects() []Subject {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append(make([]Subject, 0, len(v.subjects)), v.subjects...)
}

// TextSink prints a full rendering to a terminal (or any writer) on every Show.
type TextSink struct {
	w      io.Writer
	header string
}

var _ Sink = (*TextSink)(nil)

func NewTextSink(w io.Writer, header string) *TextSink {
	return &TextSink{w: w, header: header}
}

func (ts *TextSink) Show(subjects []Subject) error {
	if ts.header != "" {
		if _, err := fmt.Fprintf(ts.w, "-- %s --\n", ts.header); err != nil {
			return err
		}
	}
	if len(subjects) == 0 {
		_, err := io.WriteString(ts.w, "(no subjects yet)\n")
		return err
	}
	return WriteTo(ts.w, subjects)
}
