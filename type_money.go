package realty

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when a record does not carry one.
const DefaultCurrency = "PHP"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// number is the set of types accepted by the M and newDecimal factories.
type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// M returns money for value in the given currency.
func M[T number](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// PHP returns money in the default currency.
func PHP[T number](value T) Money { return M(value, DefaultCurrency) }

// currency returns the money's currency metadata. Amounts without currency
// are formatted in the default currency.
func (m Money) currency() money.Currency {
	code := m.cur
	if code == "" {
		code = DefaultCurrency
	}
	// money.New never returns a nil currency, even for unknown codes.
	return *money.New(0, code).Currency()
}

// String returns the amount formatted with the currency grapheme, e.g. "₱1,500.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Plain returns the amount with two decimals and no currency sign, as used in CSV files.
func (m Money) Plain() string { return m.value.StringFixed(int32(m.currency().Fraction)) }

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) MulInt(n int64) Money            { return Money{value: m.value.Mul(decimal.NewFromInt(n)), cur: m.cur} }

// Equal reports whether m and n have the same value. An empty currency matches any currency.
func (m Money) Equal(n Money) bool {
	return m.SameCurrency(n) && m.value.Equal(n.value)
}

// SameCurrency reports whether m and n can be added. An empty currency
// matches any currency.
func (m Money) SameCurrency(n Money) bool {
	return m.cur == n.cur || m.cur == "" || n.cur == ""
}

// plus returns m+n, or m unchanged when n is in another currency.
func (m Money) plus(n Money) Money {
	if !m.SameCurrency(n) {
		return m
	}
	return m.Add(n)
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// clamp returns m, or zero if m is negative. Aggregations read every stored
// amount through clamp so malformed records count as zero.
func (m Money) clamp() Money {
	if m.value.IsNegative() {
		return Money{cur: m.cur}
	}
	return m
}

// AsFloat returns an approximation of the value, only meant for ratios and charts.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Ratio returns m/n as a percentage, or 0 when n is not positive.
func (m Money) Ratio(n Money) Percent {
	if !n.value.IsPositive() {
		return 0
	}
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}

// UnmarshalJSON accepts both the object form written by MarshalJSON and a bare
// number, in which case the currency is left empty.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	if len(data) > 0 && data[0] != '{' {
		var d decimal.Decimal
		if err := d.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("invalid amount %s: %w", data, err)
		}
		*m = Money{value: d}
		return nil
	}
	var j struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("invalid money %s: %w", data, err)
	}
	*m = Money{value: j.Amount, cur: j.Currency}
	return nil
}
