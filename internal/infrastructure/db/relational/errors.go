package relational

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

const pgUniqueViolation = "23505"

// uniqueViolation translates a UNIQUE constraint failure on users into the
// matching validation error. It returns nil for any other error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return nil
		}
		return uniqueColumnErr(pgErr.ConstraintName)
	}

	// modernc reports e.g. "UNIQUE constraint failed: users.username (2067)".
	msg := err.Error()
	if i := strings.Index(msg, "UNIQUE constraint failed: "); i >= 0 {
		return uniqueColumnErr(msg[i:])
	}
	return nil
}

func uniqueColumnErr(detail string) error {
	switch {
	case strings.Contains(detail, "username"):
		return domain.ErrUsernameTaken
	case strings.Contains(detail, "email"):
		return domain.ErrEmailTaken
	}
	return nil
}
