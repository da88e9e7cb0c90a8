package interfaces

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("not found")

// ValidationError reports form fields that failed validation. It is produced
// before the store is touched.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type PersistenceKind string

const (
	KindForeignKey PersistenceKind = "foreign_key"
	KindUnique     PersistenceKind = "unique"
	KindNotNull    PersistenceKind = "not_null"
	KindCheck      PersistenceKind = "check"
	KindOther      PersistenceKind = "other"
)

// PersistenceError wraps a failed write or query. The transaction that
// produced it has already been rolled back.
type PersistenceError struct {
	Op         string
	Kind       PersistenceKind
	Constraint string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.Op, e.Kind, e.Constraint, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DeletionBlockedError is returned when rows in other tables still reference
// the row being deleted.
type DeletionBlockedError struct {
	Resource   string
	References map[string]int64
}

func (e *DeletionBlockedError) Error() string {
	return "deletion blocked"
}
