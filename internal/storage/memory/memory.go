// Package memory provides an in-memory implementation of storage.Storage.
//
// Records live in a plain map keyed by id. Ordering is produced on read by
// sorting the keys, which matches numeric order because ids are zero-padded
// to a fixed width.
package memory

import (
	"slices"

	"github.com/aanand-mishra/students-cli/internal/types"
)

// Store is the in-memory student store. It is not safe for concurrent use;
// the application drives it from a single goroutine.
type Store struct {
	students map[string]types.Student
}

// New returns an empty store.
func New() *Store {
	return &Store{students: make(map[string]types.Student)}
}

// InsertStudent stores a copy of student under id, replacing any record
// already stored under the same id.
func (s *Store) InsertStudent(id string, student types.Student) error {
	s.students[id] = student
	return nil
}

// CountStudents returns the number of stored records.
func (s *Store) CountStudents() (int, error) {
	return len(s.students), nil
}

// GetStudents returns a snapshot of every record, sorted by id.
func (s *Store) GetStudents() ([]types.Student, error) {
	ids := make([]string, 0, len(s.students))
	for id := range s.students {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	students := make([]types.Student, 0, len(ids))
	for _, id := range ids {
		students = append(students, s.students[id])
	}

	return students, nil
}

// Close drops every stored record.
func (s *Store) Close() error {
	clear(s.students)
	return nil
}
