package csvimport

import (
	"errors"
	"fmt"
	"strings"
)

// Load error codes
const (
	ErrCodeSchema        = "ERR_LOAD_SCHEMA"
	ErrCodeMissingHeader = "ERR_LOAD_MISSING_HEADER"
	ErrCodeMalformedRow  = "ERR_LOAD_MALFORMED_ROW"
	ErrCodeInvalidInt    = "ERR_LOAD_INVALID_INT"
	ErrCodeInvalidPrice  = "ERR_LOAD_INVALID_PRICE"
	ErrCodeInvalidTime   = "ERR_LOAD_INVALID_TIMESTAMP"
	ErrCodeInvalidEnum   = "ERR_LOAD_INVALID_ENUM"
)

// Common load errors
var (
	// ErrEmptyFile is returned when the CSV source is empty
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the source is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the CSV source has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")
)

// SchemaError reports required columns absent from a source's header row.
// It is fatal for that collection's load.
type SchemaError struct {
	Source  string
	Missing []string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("source %s missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// NewSchemaError creates a SchemaError for a source
func NewSchemaError(source string, missing []string) *SchemaError {
	return &SchemaError{Source: source, Missing: missing}
}

// RowError identifies a row that failed to parse: bad integer, bad decimal,
// bad timestamp, or an enum value outside its closed set. Fatal for that
// collection's load; no skip-and-continue.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a RowError
func NewRowError(row int, column, code, message string) *RowError {
	return &RowError{Row: row, Column: column, Code: code, Message: message}
}

// NewRowErrorWithValue creates a RowError carrying the offending raw value
func NewRowErrorWithValue(row int, column, code, message, value string) *RowError {
	return &RowError{Row: row, Column: column, Code: code, Message: message, Value: value}
}
