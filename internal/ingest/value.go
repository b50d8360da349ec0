package ingest

import "github.com/shopspring/decimal"

// Kind discriminates the cell value union.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
)

// Value is one parsed cell: a number, a string, or null (empty cell).
// Uploaded ledgers carry arbitrary column names with loosely typed
// values, so rows are maps of these rather than fixed structs.
type Value struct {
	kind Kind
	num  decimal.Decimal
	str  string
}

var nullValue = Value{kind: KindNull}

func NumberValue(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Number returns the numeric value. ok is false for strings and nulls.
func (v Value) Number() (decimal.Decimal, bool) {
	if v.kind != KindNumber {
		return decimal.Decimal{}, false
	}
	return v.num, true
}

// String returns the string value. ok is false for numbers and nulls.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Text renders the value for identifier comparison: strings verbatim,
// numbers in canonical decimal form, nulls as "".
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindString:
		return v.str
	default:
		return ""
	}
}

// Row is a single parsed ledger line keyed by column header.
type Row map[string]Value

// Lookup returns the first present value among the given column name
// variants. Uploaded files disagree on header casing, so callers pass
// every spelling they tolerate, most specific first.
func Lookup(row Row, keys ...string) (Value, bool) {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			return v, true
		}
	}
	return nullValue, false
}
