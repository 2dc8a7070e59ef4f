package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnlyFormat is the wire and storage format for calendar dates
const DateOnlyFormat = "2006-01-02"

// DateOnly is a calendar date without a time component. It serializes as an
// ISO date string (e.g. "2025-04-30") and stores as a date column.
type DateOnly struct {
	time.Time
}

// NewDateOnly creates a DateOnly from a time, truncating the time component
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly parses an ISO calendar date string
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(DateOnlyFormat, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly{Time: t}, nil
}

// String returns the ISO date representation
func (d DateOnly) String() string {
	return d.Time.Format(DateOnlyFormat)
}

// Equal reports whether two dates fall on the same calendar day
func (d DateOnly) Equal(other DateOnly) bool {
	return d.String() == other.String()
}

// MarshalJSON implements json.Marshaler
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d DateOnly) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case string:
		parsed, err := ParseDateOnly(v[:min(len(v), len(DateOnlyFormat))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

// GormDataType tells GORM to use a date column
func (DateOnly) GormDataType() string {
	return "date"
}
