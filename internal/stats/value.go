package stats

import (
	"strconv"
	"strings"
)

// OptionalInt parses a base-10 integer cell. An empty cell maps to nil;
// text that fails to parse is a FieldParseError.
func OptionalInt(cell, field string) (*int64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return nil, &FieldParseError{Field: field, Value: cell, Err: err}
	}
	return &v, nil
}

// OptionalFloat parses a floating-point cell, stripping a unit suffix such
// as " Hz" or " dBmV" first. An empty cell, or one holding only the unit,
// maps to nil; text that fails to parse is a FieldParseError.
func OptionalFloat(cell, field, suffix string) (*float64, error) {
	if suffix != "" {
		cell = strings.ReplaceAll(cell, suffix, "")
	}
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, &FieldParseError{Field: field, Value: cell, Err: err}
	}
	return &v, nil
}
