package txn

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// transientSignatures are substrings of store errors that indicate lock
// contention or busy handles. SQLite surfaces these as SQLITE_BUSY and
// SQLITE_LOCKED message text through database/sql.
var transientSignatures = []string{
	"database is locked",
	"database table is locked",
	"sqlite_busy",
	"sqlite_locked",
	"busy_snapshot",
	"busy timeout",
	"connection reset",
}

// IsTransient reports whether err looks like transient store contention that
// a retry may resolve. Validation errors and unknown-transaction misuse are
// never transient, regardless of what they wrap.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrValidation) {
		return false
	}
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
