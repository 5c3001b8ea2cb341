package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StringList is a list of plain strings stored as JSON text in the database.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// ParseStringList is the typed boundary for attribute fields (sizes, colors)
// arriving from clients and spreadsheets in assorted shapes. Accepted forms:
//
//	"M"                          single value
//	["S","M","L"]                array of strings
//	[{"name":"S"},{"name":"M"}]  array of objects carrying a name/value field
//	S,M,L                        plain comma-separated text (non-JSON)
//
// Anything else is rejected rather than silently coalesced.
func ParseStringList(raw string) (StringList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	// Plain text form: not JSON at all.
	if raw[0] != '[' && raw[0] != '"' && raw[0] != '{' {
		var out StringList
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}

	var any interface{}
	if err := json.Unmarshal([]byte(raw), &any); err != nil {
		return nil, fmt.Errorf("invalid attribute list: %w", err)
	}
	return coerceStringList(any)
}

func coerceStringList(v interface{}) (StringList, error) {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return StringList{s}, nil
		}
		return nil, nil
	case []interface{}:
		var out StringList
		for _, el := range t {
			s, err := coerceStringValue(el)
			if err != nil {
				return nil, err
			}
			if s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected attribute list shape %T", v)
	}
}

func coerceStringValue(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case map[string]interface{}:
		for _, key := range []string{"name", "value"} {
			if s, ok := t[key].(string); ok {
				return strings.TrimSpace(s), nil
			}
		}
		return "", errors.New("attribute object has no name or value field")
	default:
		return "", fmt.Errorf("unexpected attribute element %T", v)
	}
}
