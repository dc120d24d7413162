package localized

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// marshalEntries renders the canonical storage form: only filled entries,
// keys sorted lexicographically (json.Marshal sorts map keys). A deferred
// message is expanded over the supported locales first, keeping only the
// locales it renders something for.
func marshalEntries(s *String, supported []string) ([]byte, error) {
	out := make(map[string]string)
	if s != nil {
		if s.msg != nil {
			for _, locale := range supported {
				if v := s.msg.Render(locale); v != "" {
					out[locale] = v
				}
			}
		} else {
			for _, k := range s.keys {
				if v := s.values[k]; v != "" {
					out[k] = v
				}
			}
		}
	}
	return json.Marshal(out)
}

// parseStored builds a String from column or JSON-document content. A JSON
// string is unwrapped and re-parsed, since a text column may hold the JSON
// object encoded once more; everything else goes through Parse.
func parseStored(data string) *String {
	if res := gjson.Parse(data); gjson.Valid(data) && res.Type == gjson.String {
		return Parse(res.String())
	}
	return Parse(data)
}

// MarshalJSON implements json.Marshaler using the canonical storage form,
// expanding a deferred message over its captured supported-locale list.
func (s *String) MarshalJSON() ([]byte, error) {
	var supported []string
	if s != nil && s.msg != nil {
		supported = s.msg.supported
	}
	return marshalEntries(s, supported)
}

// UnmarshalJSON implements json.Unmarshaler. Any JSON value is accepted:
// objects become entries, null clears, everything else degrades to the
// naive fallback entry.
func (s *String) UnmarshalJSON(data []byte) error {
	*s = *parseStored(string(data))
	return nil
}

// Value implements driver.Valuer for database serialization.
func (s *String) Value() (driver.Value, error) {
	if s == nil || (s.msg == nil && s.values == nil) {
		return nil, nil //nolint:nilnil //an absent value stores as NULL
	}
	return s.MarshalJSON()
}

// Scan implements sql.Scanner for database deserialization. Malformed column
// content is not an error; it degrades to the naive fallback entry.
func (s *String) Scan(value any) error {
	if value == nil {
		*s = String{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*s = *parseStored(string(v))
	case string:
		*s = *parseStored(v)
	default:
		return fmt.Errorf("localized: unsupported Scan type: %T", value)
	}
	return nil
}

// GormDataType returns the common GORM data type.
func (s *String) GormDataType() string {
	return "localizedstring"
}

// GormDBDataType returns the dialect-specific database column type.
func (s *String) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "mysql", "sqlite":
		return "JSON"
	case "sqlserver":
		return "NVARCHAR(MAX)"
	default:
		return ""
	}
}

// GormValue optimizes how values are rendered in SQL for specific dialects.
func (s *String) GormValue(_ context.Context, db *gorm.DB) clause.Expr {
	if s == nil {
		return clause.Expr{SQL: "?", Vars: []any{nil}}
	}

	data, err := s.MarshalJSON()
	if err != nil {
		return clause.Expr{SQL: "?", Vars: []any{nil}}
	}

	switch db.Dialector.Name() {
	case "mysql":
		return gorm.Expr("CAST(? AS JSON)", data)
	default:
		return gorm.Expr("?", data)
	}
}
