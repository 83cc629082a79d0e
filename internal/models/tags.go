package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Tags is an ordered list of free-form labels. Duplicates are allowed.
// It is stored as a JSONB array and always marshals as an array, never null.
type Tags []string

// ParseTags splits a comma-separated input, trimming each segment and
// dropping empty ones: "a, b ,c" becomes [a b c].
func ParseTags(s string) Tags {
	out := Tags{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinTags is the inverse of ParseTags for already clean lists.
func JoinTags(t Tags) string {
	return strings.Join(t, ", ")
}

// Contains reports whether tag is present, compared case-insensitively.
func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if strings.EqualFold(v, tag) {
			return true
		}
	}
	return false
}

func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON text or bytes.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported source %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}
