package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SocialLinks mirrors the social profile block on site settings, stored as jsonb.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Pinterest string `json:"pinterest"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
}

// Value marshals SocialLinks into a jsonb column.
func (s SocialLinks) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan decodes a jsonb column into SocialLinks.
func (s *SocialLinks) Scan(value interface{}) error {
	if value == nil {
		*s = SocialLinks{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("social links: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, s)
}
