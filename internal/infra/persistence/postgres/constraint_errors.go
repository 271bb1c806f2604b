package postgres

import (
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Names of the unique constraints on the users table. The repository uses
// them to attribute a conflict to the violated field.
const (
	usernameUniqueConstraint = "users_username_key"
	emailUniqueConstraint    = "users_email_key"
)

// uniqueViolationConstraint reports whether err is a PostgreSQL unique
// constraint violation, and if so which constraint was violated.
func uniqueViolationConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}

	// GORM translates driver errors when TranslateError is enabled; the
	// constraint name is then only available in the message text.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return constraintNameFromMessage(err.Error()), true
	}

	return "", false
}

func constraintNameFromMessage(msg string) string {
	for _, name := range []string{usernameUniqueConstraint, emailUniqueConstraint} {
		if strings.Contains(msg, name) {
			return name
		}
	}

	return ""
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.NotNullViolation
	}

	return false
}
