// Package render writes student records in the fixed output format:
//
//	<id> <name> <class> <date-of-birth> <gpa>
//
// one record per line, with the GPA in fixed-point notation and exactly two
// decimals.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students-cli/internal/types"
)

// GPA formats gpa with exactly two decimals. Rounding works on the exact
// float32 value and breaks exact ties towards the even digit, so 8.456
// renders as "8.46" and 8.125 as "8.12".
func GPA(gpa float32) string {
	return strconv.FormatFloat(float64(gpa), 'f', 2, 32)
}

// Line returns s as one output line, without the trailing newline.
func Line(s types.Student) string {
	return strings.Join([]string{s.ID, s.Name, s.Class, s.DateOfBirth, GPA(s.GPA)}, " ")
}

// WriteStudents writes one line per student to w, in slice order.
func WriteStudents(w io.Writer, students []types.Student) error {
	bw := bufio.NewWriter(w)

	for _, s := range students {
		if _, err := bw.WriteString(Line(s) + "\n"); err != nil {
			return fmt.Errorf("WriteStudents: %s: %w", s.ID, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteStudents: flush: %w", err)
	}
	return nil
}
