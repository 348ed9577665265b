// Package storage defines the Storage interface: the contract any student
// store must satisfy to back the registration service.
//
// The service layer depends only on this interface, so the in-memory store
// and the SQLite store are interchangeable, and tests can use either one
// without changing the code under test.
package storage

import "github.com/aanand-mishra/students-cli/internal/types"

// Storage is an ordered mapping from student id to student record.
//
// Records are only ever inserted. Nothing is updated or deleted after
// insertion, apart from the overwrite that InsertStudent performs on a
// repeated key.
type Storage interface {
	// InsertStudent stores student under id. An existing record with the
	// same id is replaced.
	InsertStudent(id string, student types.Student) error

	// CountStudents returns the number of stored records.
	CountStudents() (int, error)

	// GetStudents returns every record sorted by id ascending.
	// The slice is a fresh copy; it is empty (not nil) when nothing is stored.
	GetStudents() ([]types.Student, error)

	// Close releases the resources held by the store.
	Close() error
}
