package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"tradequality/src/model"
	"tradequality/src/utils"
)

var ErrMissingColumn = errors.New("required column missing")

// rawTable is a fully materialized SELECT * result with every cell kept as text.
type rawTable struct {
	name    string
	columns []string
	index   map[string]int
	kinds   []model.ColumnKind
	rows    [][]model.Value
}

func selectAll(ctx context.Context, db *gorm.DB, table string) (*rawTable, error) {
	rows, err := db.WithContext(ctx).Table(table).Rows()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types of %s: %w", table, err)
	}

	out := &rawTable{
		name:    table,
		columns: columns,
		index:   make(map[string]int, len(columns)),
		kinds:   make([]model.ColumnKind, len(columns)),
	}
	for i, c := range columns {
		out.index[strings.ToLower(c)] = i
	}

	// observed tracks the Go types seen per column for drivers that
	// do not report a usable type name.
	observed := make([]map[model.ColumnKind]bool, len(columns))
	for i := range observed {
		observed[i] = make(map[model.ColumnKind]bool)
	}
	// strayText marks columns holding a string cell that is not a number.
	// SQLite keeps a storage class per cell, so a REAL column can carry 'abc'.
	strayText := make([]bool, len(columns))

	for rows.Next() {
		cells := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}

		row := make([]model.Value, len(columns))
		for i, cell := range cells {
			v, kind := cellValue(cell)
			row[i] = v
			if kind != model.KindUnknown {
				observed[i][kind] = true
			}
			if kind == model.KindText && !isNumber(v.Raw) {
				strayText[i] = true
			}
		}
		out.rows = append(out.rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}

	for i, ct := range types {
		if kind, ok := kindFromDatabaseType(ct.DatabaseTypeName()); ok {
			if kind == model.KindNumeric && strayText[i] {
				kind = model.KindText
			}
			out.kinds[i] = kind
			continue
		}
		out.kinds[i] = kindFromObserved(observed[i])
	}

	return out, nil
}

func (t *rawTable) require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if _, ok := t.index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s.%s", ErrMissingColumn, t.name, strings.Join(missing, ","))
	}
	return nil
}

func (t *rawTable) value(row []model.Value, column string) model.Value {
	i, ok := t.index[column]
	if !ok {
		return model.NullValue()
	}
	return row[i]
}

func (t *rawTable) kind(column string) model.ColumnKind {
	i, ok := t.index[column]
	if !ok {
		return model.KindUnknown
	}
	return t.kinds[i]
}

// cellValue renders a scanned driver value as text and reports the kind its Go type implies.
func cellValue(src interface{}) (model.Value, model.ColumnKind) {
	switch x := src.(type) {
	case nil:
		return model.NullValue(), model.KindUnknown
	case string:
		return model.NewValue(x), model.KindText
	case []byte:
		return model.NewValue(string(x)), model.KindText
	case bool:
		return model.NewValue(strconv.FormatBool(x)), model.KindBool
	case time.Time:
		return model.NewValue(utils.FormatTimestamp(x)), model.KindTime
	case float64:
		return model.NewValue(strconv.FormatFloat(x, 'f', -1, 64)), model.KindNumeric
	case float32:
		return model.NewValue(strconv.FormatFloat(float64(x), 'f', -1, 32)), model.KindNumeric
	case int64:
		return model.NewValue(strconv.FormatInt(x, 10)), model.KindNumeric
	case int, int8, int16, int32, uint, uint8, uint16, uint32, uint64:
		return model.NewValue(fmt.Sprint(x)), model.KindNumeric
	default:
		return model.NewValue(fmt.Sprint(x)), model.KindUnknown
	}
}

func kindFromDatabaseType(name string) (model.ColumnKind, bool) {
	base := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}

	switch base {
	case "TEXT", "VARCHAR", "CHAR", "BPCHAR", "CHARACTER", "CHARACTER VARYING", "NAME", "STRING", "CLOB", "UUID":
		return model.KindText, true
	case "INT", "INT2", "INT4", "INT8", "INTEGER", "SMALLINT", "BIGINT", "TINYINT",
		"NUMERIC", "DECIMAL", "REAL", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "DOUBLE PRECISION":
		return model.KindNumeric, true
	case "TIMESTAMP", "TIMESTAMPTZ", "DATE", "DATETIME":
		return model.KindTime, true
	case "BOOL", "BOOLEAN":
		return model.KindBool, true
	default:
		return model.KindUnknown, false
	}
}

// isNumber accepts what a numeric driver type renders as text, NaN included.
func isNumber(raw string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil
}

// kindFromObserved mirrors how a dataframe infers a column: any string makes it textual.
func kindFromObserved(seen map[model.ColumnKind]bool) model.ColumnKind {
	switch {
	case seen[model.KindText]:
		return model.KindText
	case seen[model.KindNumeric]:
		return model.KindNumeric
	case seen[model.KindTime]:
		return model.KindTime
	case seen[model.KindBool]:
		return model.KindBool
	default:
		return model.KindUnknown
	}
}
