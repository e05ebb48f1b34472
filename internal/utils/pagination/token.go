package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// Cursor is the position after the last row of a page. Rows are ordered by
// SortDate, then CreatedAt, then ID, all descending.
type Cursor struct {
	SortDate  time.Time
	CreatedAt time.Time
	ID        string
}

// EncodeToken creates an opaque, URL safe token for the row at c.
func EncodeToken(c Cursor) string {
	raw := strings.Join([]string{c.SortDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a token produced by EncodeToken. Malformed tokens are validation errors.
func DecodeToken(token string) (Cursor, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (base64 decode)", apperrors.ErrValidation)
	}
	parts := strings.SplitN(string(decoded), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (split)", apperrors.ErrValidation)
	}

	sortDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (sort date parse)", apperrors.ErrValidation)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (created_at parse)", apperrors.ErrValidation)
	}
	return Cursor{SortDate: sortDate, CreatedAt: createdAt, ID: parts[2]}, nil
}

// Page trims a result fetched with limit+1 rows to limit and returns the token
// for the next page, or nil when there is none.
func Page[T any](rows []T, limit int, cursorOf func(T) Cursor) ([]T, *string) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	token := EncodeToken(cursorOf(rows[limit-1]))
	return rows, &token
}
