// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The store does not carry state between runs. Records live in a TEMP
// table owned by the single pooled connection: it starts empty on every
// open, disappears on Close, and never touches tables stored in the
// database file. Ids are derived from the row count, so rows left over from
// an earlier run would shift every new id.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the database-backed implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.Storage.Path, creates an empty
// temporary students table, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Temporary tables and ":memory:" databases belong to one connection,
	// so the pool must never open a second one or retire the first.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Schema:
	//   id           : generated student id, e.g. "SV001"; sorts in id order
	//   name         : full name line as read from input
	//   class        : class token
	//   date_of_birth: normalized date string
	//   gpa          : grade point average
	_, err = db.Exec(`
		CREATE TEMP TABLE students (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			class         TEXT NOT NULL,
			date_of_birth TEXT NOT NULL,
			gpa           REAL NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// InsertStudent writes one row. INSERT OR REPLACE gives the store its
// overwrite-on-duplicate-key contract.
func (s *SQLite) InsertStudent(id string, student types.Student) error {
	stmt, err := s.Db.Prepare(
		"INSERT OR REPLACE INTO students (id, name, class, date_of_birth, gpa) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("InsertStudent: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(id, student.Name, student.Class, student.DateOfBirth, float64(student.GPA))
	if err != nil {
		return fmt.Errorf("InsertStudent: exec: %w", err)
	}

	return nil
}

// CountStudents returns the number of rows in the students table.
func (s *SQLite) CountStudents() (int, error) {
	stmt, err := s.Db.Prepare("SELECT COUNT(*) FROM students")
	if err != nil {
		return 0, fmt.Errorf("CountStudents: prepare: %w", err)
	}
	defer stmt.Close()

	var count int
	if err := stmt.QueryRow().Scan(&count); err != nil {
		return 0, fmt.Errorf("CountStudents: scan: %w", err)
	}

	return count, nil
}

// GetStudents returns all rows ordered by id.
func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, class, date_of_birth, gpa FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		var (
			student types.Student
			gpa     float64
		)

		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Class,
			&student.DateOfBirth,
			&gpa,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		student.GPA = float32(gpa)

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// Close closes the underlying connection pool.
func (s *SQLite) Close() error {
	if err := s.Db.Close(); err != nil {
		return fmt.Errorf("sqlite.Close: %w", err)
	}
	return nil
}
