package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray stores a JSON-encoded string slice in a text column. Inputs
// that arrive as a single scalar from older form clients are coerced into a
// one-element array when unmarshaled.
type StringArray []string

// Value implements database/sql/driver.Valuer
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements database/sql.Scanner
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringArray")
	}

	return json.Unmarshal(bytes, s)
}

// UnmarshalJSON accepts either an array of strings or a bare string.
func (s *StringArray) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*s = values
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*s = StringArray{}
		return nil
	}
	*s = StringArray{single}
	return nil
}
