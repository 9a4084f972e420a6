package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SEO holds the per-entity metadata block stored as jsonb.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// Value marshals SEO into a jsonb column.
func (s SEO) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan decodes a jsonb column into SEO.
func (s *SEO) Scan(value interface{}) error {
	if value == nil {
		*s = SEO{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("seo: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, s)
}

func toBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
