// Package board defines the board aggregate: a named surface holding ordered
// columns, where each column contains tasks.
package board

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Board represents a shared task board. Tasks reference a board through their
// column; a board always has at least one column.
type Board struct {
	ID          string
	Name        string
	Description string
	Columns     []Column
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Board entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (b *Board) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	seen := make(map[string]struct{}, len(b.Columns))
	for _, c := range b.Columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			fields["columns"] = "column names must not be empty"
			break
		}
		if _, dup := seen[strings.ToLower(name)]; dup {
			fields["columns"] = "column names must be unique"
			break
		}
		seen[strings.ToLower(name)] = struct{}{}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Column returns the board's column with the given ID, or nil.
func (b *Board) Column(id string) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}
