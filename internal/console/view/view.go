// Package view is the console front end. It reads a record count and that
// many student records from input, registers each one through the
// controller, and prints every stored record in id order.
//
// INPUT FORMAT:
//
//	<n>
//	<name line>
//	<class> <date of birth> <gpa>
//	... (n times)
//
// The name is a whole line, so it may contain spaces. Class, date and GPA
// are whitespace-delimited tokens and may be split across lines.
//
// Input errors are fatal: the first malformed or missing field stops the
// run before anything is printed.
package view

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students-cli/internal/types"
	"github.com/aanand-mishra/students-cli/internal/utils/datefmt"
	"github.com/aanand-mishra/students-cli/internal/utils/render"
)

var (
	// ErrUnexpectedEOF means the input ended before every expected field was read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMalformedInput means a numeric field could not be parsed.
	ErrMalformedInput = errors.New("malformed input")
)

// Controller is what the view needs from the controller layer.
type Controller interface {
	AddStudent(s types.Student) (types.Student, error)
	ListAll() ([]types.Student, error)
}

// View drives one registration session.
type View struct {
	controller Controller
	log        *slog.Logger
}

func New(controller Controller, log *slog.Logger) *View {
	return &View{controller: controller, log: log}
}

// Run reads every record from r, registers them, and writes all stored
// records to w.
func (v *View) Run(r io.Reader, w io.Writer) error {
	sc := NewScanner(r)

	n, err := readCount(sc)
	if err != nil {
		return err
	}
	v.log.Debug("reading students", slog.Int("count", n))

	for i := 1; i <= n; i++ {
		student, err := readStudent(sc)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		student.DateOfBirth = datefmt.Normalize(student.DateOfBirth)

		registered, err := v.controller.AddStudent(student)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		v.log.Debug("student registered",
			slog.String("id", registered.ID),
			slog.String("class", registered.Class))
	}

	v.log.Info("students registered", slog.Int("count", n))

	return v.ShowAllStudents(w)
}

// ShowAllStudents writes every registered student to w, one per line.
func (v *View) ShowAllStudents(w io.Writer) error {
	students, err := v.controller.ListAll()
	if err != nil {
		return err
	}
	return render.WriteStudents(w, students)
}

func readCount(sc *Scanner) (int, error) {
	tok, err := sc.Token()
	if err != nil {
		return 0, fieldError("record count", err)
	}

	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("record count %q: %w", tok, ErrMalformedInput)
	}

	if err := sc.SkipLine(); err != nil {
		return 0, fieldError("record count", err)
	}
	return n, nil
}

// readStudent reads the name line, then class, date and GPA tokens, then
// drops whatever is left on the GPA line.
func readStudent(sc *Scanner) (types.Student, error) {
	var s types.Student

	name, err := sc.Line()
	if err != nil {
		return s, fieldError("name", err)
	}
	s.Name = name

	if s.Class, err = sc.Token(); err != nil {
		return s, fieldError("class", err)
	}
	if s.DateOfBirth, err = sc.Token(); err != nil {
		return s, fieldError("date of birth", err)
	}

	tok, err := sc.Token()
	if err != nil {
		return s, fieldError("gpa", err)
	}
	if s.GPA, err = parseGPA(tok); err != nil {
		return s, err
	}

	if err := sc.SkipLine(); err != nil {
		return s, fieldError("gpa", err)
	}
	return s, nil
}

// parseGPA accepts finite decimal numbers only. Hex floats, NaN and
// infinities parse as floats but cannot be rendered with two decimals.
func parseGPA(tok string) (float32, error) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("gpa %q: %w", tok, ErrMalformedInput)
	}

	gpa, err := strconv.ParseFloat(tok, 32)
	if err != nil || math.IsNaN(gpa) || math.IsInf(gpa, 0) {
		return 0, fmt.Errorf("gpa %q: %w", tok, ErrMalformedInput)
	}
	return float32(gpa), nil
}

func fieldError(field string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", field, ErrUnexpectedEOF)
	}
	return fmt.Errorf("%s: %w", field, err)
}
