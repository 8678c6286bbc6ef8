package models

import (
	"encoding/json"
	"strconv"
)

// Finding represents one row of the risks table
type Finding struct {
	Host     string `json:"host"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// IsBlank returns true if no field carries a value
func (f Finding) IsBlank() bool {
	return f.Host == "" && f.Severity == "" && f.Message == ""
}

// UnmarshalJSON decodes a row permissively, the way the dashboard grid
// consumed it: missing keys yield blank cells, unknown keys are ignored,
// scalar values of the wrong type are coerced to their display string, and
// anything that is not an object yields an all-blank row.
func (f *Finding) UnmarshalJSON(data []byte) error {
	*f = Finding{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	f.Host = coerceString(raw["host"])
	f.Severity = coerceString(raw["severity"])
	f.Message = coerceString(raw["message"])
	return nil
}

// coerceString renders a scalar JSON value as the string a table cell would
// show. Nulls, objects and arrays render blank.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return ""
}
