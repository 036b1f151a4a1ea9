package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// sqlTime scans timestamps that arrive as time.Time from pgx and from typed
// SQLite columns, or as text from SQLite expressions such as RETURNING.
type sqlTime time.Time

func (t *sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = sqlTime(time.Time{})
		return nil
	case time.Time:
		*t = sqlTime(v)
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *sqlTime) parse(raw string) error {
	raw = strings.TrimSuffix(raw, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			*t = sqlTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}
