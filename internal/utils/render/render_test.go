package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students-cli/internal/types"
)

func TestGPA(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{8, "8.00"},
		{8.5, "8.50"},
		{9, "9.00"},
		{8.456, "8.46"},
		{8.454, "8.45"},
		{0, "0.00"},
		{10, "10.00"},
		{3.999, "4.00"},
		// exact binary ties round to even, like printf("%.2f")
		{8.125, "8.12"},
		{8.375, "8.38"},
		{-1.5, "-1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GPA(tt.in))
		})
	}
}

func TestLine(t *testing.T) {
	s := types.Student{ID: "SV001", Name: "Alice Nguyen", Class: "10A", DateOfBirth: "01/02/2005", GPA: 8.5}
	assert.Equal(t, "SV001 Alice Nguyen 10A 01/02/2005 8.50", Line(s))
}

func TestLine_EmptyRecord(t *testing.T) {
	assert.Equal(t, "    0.00", Line(types.Student{}))
}

func TestWriteStudents(t *testing.T) {
	var buf bytes.Buffer

	err := WriteStudents(&buf, []types.Student{
		{ID: "SV001", Name: "Alice Nguyen", Class: "10A", DateOfBirth: "01/02/2005", GPA: 8.5},
		{ID: "SV002", Name: "Bob Tran", Class: "10B", DateOfBirth: "15/03/2004", GPA: 9},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"SV001 Alice Nguyen 10A 01/02/2005 8.50\n"+
			"SV002 Bob Tran 10B 15/03/2004 9.00\n",
		buf.String())
}

func TestWriteStudents_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStudents(&buf, nil))
	assert.Empty(t, buf.String())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteStudents_WriterError(t *testing.T) {
	err := WriteStudents(errWriter{}, []types.Student{{ID: "SV001"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush")
}
