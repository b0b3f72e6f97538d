package csvimport

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// timestampLayouts are tried in order when decoding a timestamp column.
var timestampLayouts = []string{
	"2006-01-02 15:04:05 MST",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DecodeInt decodes an integer column, reporting a RowError on failure.
func DecodeInt(row *Row, column string) (int, error) {
	raw := row.Get(column)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewRowErrorWithValue(row.LineNumber, column, ErrCodeInvalidInt, "expected integer", raw)
	}
	return v, nil
}

// DecodeDecimal decodes a fixed-point price column. Values go through
// decimal parsing directly so cents-level precision never touches a float.
func DecodeDecimal(row *Row, column string) (decimal.Decimal, error) {
	raw := row.Get(column)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewRowErrorWithValue(row.LineNumber, column, ErrCodeInvalidPrice, "expected decimal number", raw)
	}
	return v, nil
}

// DecodeTimestamp decodes a timestamp column. Known layouts are tried in
// order; a plain integer is treated as unix seconds.
func DecodeTimestamp(row *Row, column string) (time.Time, error) {
	raw := row.Get(column)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, NewRowErrorWithValue(row.LineNumber, column, ErrCodeInvalidTime, "unparsable timestamp", raw)
}

// DecodeEnum decodes an enum column through the closed-set parser of the
// target type, mapping an out-of-set value to a RowError.
func DecodeEnum[T ~string](row *Row, column string, parse func(string) (T, error)) (T, error) {
	raw := row.Get(column)
	v, err := parse(raw)
	if err != nil {
		var zero T
		return zero, NewRowErrorWithValue(row.LineNumber, column, ErrCodeInvalidEnum, err.Error(), raw)
	}
	return v, nil
}
