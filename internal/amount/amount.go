// Package amount converts between raw integer coin amounts and display
// strings. All arithmetic is exact; binary floating point is never used.
package amount

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrFormat marks malformed numeric input: a non-integer raw string, a
// negative decimal count, or a display string the parser cannot invert.
var ErrFormat = errors.New("malformed amount")

// Format renders a raw integer amount scaled down by decimals. Trailing
// fractional zeros are trimmed and the point is omitted when the fraction
// is zero. With signed set, negative values are prefixed with a minus;
// zero never carries a sign. Without it, the magnitude is rendered.
func Format(raw *big.Int, decimals int, signed bool) (string, error) {
	if raw == nil {
		return "", fmt.Errorf("%w: nil value", ErrFormat)
	}
	if decimals < 0 {
		return "", fmt.Errorf("%w: negative decimals %d", ErrFormat, decimals)
	}

	abs := new(big.Int).Abs(raw)
	text := abs.String()
	if decimals > 0 {
		denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
		rat := new(big.Rat).SetFrac(abs, denom)
		text = rat.FloatString(decimals)
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}

	if signed && raw.Sign() < 0 {
		return "-" + text, nil
	}
	return text, nil
}

// FormatString is Format for a decimal-string raw amount.
func FormatString(raw string, decimals int, signed bool) (string, error) {
	value, err := ParseRaw(raw)
	if err != nil {
		return "", err
	}
	return Format(value, decimals, signed)
}

// ParseRaw converts a decimal-string integer into a big.Int.
func ParseRaw(raw string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base-10 integer", ErrFormat, raw)
	}
	return value, nil
}

// Parse is the inverse of Format: it recovers the raw integer from a
// display string and the decimal count it was formatted with. The fraction
// must not be longer than decimals.
func Parse(display string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, fmt.Errorf("%w: negative decimals %d", ErrFormat, decimals)
	}

	text := display
	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	intPart, fracPart, hasPoint := strings.Cut(text, ".")
	if intPart == "" || !allDigits(intPart) {
		return nil, fmt.Errorf("%w: %q", ErrFormat, display)
	}
	if hasPoint && (fracPart == "" || !allDigits(fracPart)) {
		return nil, fmt.Errorf("%w: %q", ErrFormat, display)
	}
	if len(fracPart) > decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrFormat, display, decimals)
	}

	padded := fracPart + strings.Repeat("0", decimals-len(fracPart))
	value, ok := new(big.Int).SetString(intPart+padded, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, display)
	}
	if negative {
		value.Neg(value)
	}
	return value, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
