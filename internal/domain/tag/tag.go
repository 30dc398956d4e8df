// Package tag defines labels that can be assigned to tasks across boards.
package tag

import (
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// colorPattern matches CSS-style hex colors (#RGB or #RRGGBB).
var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Tag is a named label assignable to any number of tasks. Names are unique
// case-insensitively.
type Tag struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

// Validate checks business rules for the Tag entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Tag) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if t.Color != "" && !colorPattern.MatchString(t.Color) {
		fields["color"] = "must be a hex color like #0af or #00aaff"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
