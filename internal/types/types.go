// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: the view,
// service, storage, and render packages all import types without depending
// on each other.
package types

// Student represents one student record.
//
// The zero value is the empty record: every string empty and GPA zero.
// ID stays empty until the registration service assigns one; after that
// the record is only ever copied, never changed in place.
//
// GPA is single precision. Output rounding is defined on the float32 value,
// so widening it to float64 early would change how ties render.
type Student struct {
	ID          string
	Name        string
	Class       string
	DateOfBirth string
	GPA         float32
}

// WithID returns a copy of s carrying the given id.
func (s Student) WithID(id string) Student {
	s.ID = id
	return s
}
