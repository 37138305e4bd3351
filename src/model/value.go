package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ColumnKind describes how a column is stored in the source table.
type ColumnKind string

const (
	KindUnknown ColumnKind = "unknown"
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
	KindTime    ColumnKind = "time"
	KindBool    ColumnKind = "bool"
)

// Value is a single cell as read from the data source, kept in its textual form.
// A zero Value is NULL.
type Value struct {
	Raw   string
	Valid bool
}

func NewValue(raw string) Value {
	return Value{Raw: raw, Valid: true}
}

func NullValue() Value {
	return Value{}
}

func (v Value) String() string {
	if !v.Valid {
		return "NULL"
	}
	return v.Raw
}

// Decimal parses the cell as an exact number. NULL and non-numeric text report false.
func (v Value) Decimal() (decimal.Decimal, bool) {
	if !v.Valid {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.Raw))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Raw)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = NewValue(raw)
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	if !v.Valid {
		return nil, nil
	}
	return v.Raw, nil
}
