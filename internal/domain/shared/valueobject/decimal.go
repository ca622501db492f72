package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal coerces heterogeneous numeric input to an exact decimal value.
// Nil, blank strings and unparseable input all collapse to exact zero; the
// engine treats missing monetary data as zero rather than failing a report.
func ToDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	default:
		d, err := decimal.NewFromString(fmt.Sprint(value))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
}

// Cents quantizes a monetary value to 2 fraction digits, rounding halves up.
// Only final reported figures pass through here; intermediate sums stay at
// full precision so rounding error never compounds.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent quantizes a percentage figure to 2 fraction digits.
func Percent(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RatioPercent returns part/whole*100 quantized to 2 fraction digits,
// or exact zero when the denominator is zero.
func RatioPercent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return Percent(part.Div(whole).Mul(decimal.NewFromInt(100)))
}

// SafeDiv returns a/b at full precision, or exact zero when b is zero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}
