// Package student implements student registration: it assigns each new
// record the next sequential id and stores it.
package student

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/types"
)

// IDGenerator formats sequence numbers as student ids: Prefix followed by
// the number left-padded with zeros to Width digits. Numbers with more than
// Width digits are not truncated, so "SV999" is followed by "SV1000".
type IDGenerator struct {
	Prefix string
	Width  int
}

// NewIDGenerator builds a generator from the id section of the config.
func NewIDGenerator(cfg config.ID) IDGenerator {
	return IDGenerator{Prefix: cfg.Prefix, Width: cfg.Width}
}

// Format returns the id for the 1-based sequence number seq.
func (g IDGenerator) Format(seq int) string {
	digits := strconv.Itoa(seq)

	var b strings.Builder
	b.Grow(len(g.Prefix) + max(g.Width, len(digits)))
	b.WriteString(g.Prefix)
	for i := len(digits); i < g.Width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)

	return b.String()
}

// Next returns the id following count already registered records.
func (g IDGenerator) Next(count int) string {
	return g.Format(count + 1)
}

// Registrar registers students into a store.
//
// Ids come from the store's current count, so a Registrar must be the only
// writer to its store and must not be shared between goroutines.
type Registrar struct {
	storage storage.Storage
	ids     IDGenerator
}

// NewRegistrar returns a Registrar writing to s with ids from ids.
func NewRegistrar(s storage.Storage, ids IDGenerator) *Registrar {
	return &Registrar{storage: s, ids: ids}
}

// Register assigns the next id to a copy of s, stores it, and returns the
// stored record. Any id already on s is replaced.
func (r *Registrar) Register(s types.Student) (types.Student, error) {
	count, err := r.storage.CountStudents()
	if err != nil {
		return types.Student{}, fmt.Errorf("Register: count: %w", err)
	}

	id := r.ids.Next(count)
	record := s.WithID(id)

	if err := r.storage.InsertStudent(id, record); err != nil {
		return types.Student{}, fmt.Errorf("Register: insert %s: %w", id, err)
	}

	return record, nil
}

// List returns every registered student in id order.
func (r *Registrar) List() ([]types.Student, error) {
	students, err := r.storage.GetStudents()
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return students, nil
}
