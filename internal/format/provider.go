// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package format

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Provider renders a single argument of a format item.
type Provider interface {
	// FormatValue renders value following spec, the text after the colon of the item.
	// spec is empty when the item has none.
	FormatValue(value any, spec string) (string, error)
}

// Invariant formats numbers with '.' as decimal separator and ',' for grouping,
// independently from any language. It is the default Provider.
var Invariant Provider = invariant{}

var (
	errIntegralOnly = errors.New("format specifier requires an integral value")
	errSpecifier    = errors.New("invalid format specifier")
)

// locale is the culture-sensitive part of number rendering.
type locale interface {
	decimalSeparator() string
	grouped(n numeric, precision int) string
	percent(n numeric, precision int) string
}

type invariant struct{}

func (invariant) FormatValue(value any, spec string) (string, error) {
	return formatValue(value, spec, invariantLocale{})
}

type invariantLocale struct{}

func (invariantLocale) decimalSeparator() string {
	return "."
}

func (invariantLocale) grouped(n numeric, precision int) string {
	return groupDigits(n.fixed(precision), ",", ".")
}

func (l invariantLocale) percent(n numeric, precision int) string {
	return l.grouped(numeric{kind: reflect.Float64, f: n.float() * 100, bits: 64}, precision) + " %"
}

// numeric is an argument of any integer or floating point kind.
type numeric struct {
	kind reflect.Kind
	i    int64
	u    uint64
	f    float64
	bits int
}

func toNumeric(value any) (numeric, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numeric{kind: reflect.Int64, i: v.Int(), bits: v.Type().Bits()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numeric{kind: reflect.Uint64, u: v.Uint(), bits: v.Type().Bits()}, true
	case reflect.Float32, reflect.Float64:
		return numeric{kind: reflect.Float64, f: v.Float(), bits: v.Type().Bits()}, true
	default:
		return numeric{}, false
	}
}

func (n numeric) integral() bool {
	return n.kind != reflect.Float64
}

func (n numeric) float() float64 {
	switch n.kind {
	case reflect.Int64:
		return float64(n.i)
	case reflect.Uint64:
		return float64(n.u)
	default:
		return n.f
	}
}

// integer returns the decimal digits of an integral value.
func (n numeric) integer() string {
	if n.kind == reflect.Uint64 {
		return strconv.FormatUint(n.u, 10)
	}
	return strconv.FormatInt(n.i, 10)
}

// fixed renders the value with exactly precision fractional digits and '.' as separator.
func (n numeric) fixed(precision int) string {
	if !n.integral() {
		return strconv.FormatFloat(n.f, 'f', precision, n.bits)
	}

	text := n.integer()
	if precision > 0 {
		text += "." + strings.Repeat("0", precision)
	}
	return text
}

// general renders the shortest representation that reads back to the same value.
// Decimal exponents below -4, or from 15 (7 for 32 bit values) up, use E notation.
func (n numeric) general() string {
	if n.integral() {
		return n.integer()
	}

	limit := 1e15
	if n.bits == 32 {
		limit = 1e7
	}

	abs := math.Abs(n.f)
	if abs == 0 || (abs >= 1e-4 && abs < limit) {
		return strconv.FormatFloat(n.f, 'f', -1, n.bits)
	}
	return strings.ToUpper(strconv.FormatFloat(n.f, 'e', -1, n.bits))
}

func formatValue(value any, spec string, loc locale) (string, error) {
	if value == nil {
		return "", nil
	}

	if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Sprint(value), nil
	}

	if strings.HasPrefix(spec, "%") {
		return fmt.Sprintf(spec, value), nil
	}

	if t, ok := value.(time.Time); ok && spec != "" {
		return t.Format(spec), nil
	}

	switch v := value.(type) {
	case error:
		return v.Error(), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	n, ok := toNumeric(value)
	if !ok {
		return fmt.Sprint(value), nil
	}

	if spec == "" {
		return localizeSeparator(n.general(), loc), nil
	}

	return formatNumber(n, spec, loc)
}

func formatNumber(n numeric, spec string, loc locale) (string, error) {
	specifier := spec[0]
	precision := -1
	if len(spec) > 1 {
		parsed, err := strconv.Atoi(spec[1:])
		if err != nil || parsed < 0 || parsed > 99 {
			return "", fmt.Errorf("%w: %q", errSpecifier, spec)
		}
		precision = parsed
	}

	withDefault := func(fallback int) int {
		if precision < 0 {
			return fallback
		}
		return precision
	}

	switch specifier {
	case 'D', 'd':
		if !n.integral() {
			return "", fmt.Errorf("%w: %q", errIntegralOnly, spec)
		}
		return padDigits(n.integer(), withDefault(0)), nil
	case 'X', 'x':
		if !n.integral() {
			return "", fmt.Errorf("%w: %q", errIntegralOnly, spec)
		}
		text := hexDigits(n)
		if specifier == 'X' {
			text = strings.ToUpper(text)
		}
		return padDigits(text, withDefault(0)), nil
	case 'F', 'f':
		return localizeSeparator(n.fixed(withDefault(2)), loc), nil
	case 'N', 'n':
		return loc.grouped(n, withDefault(2)), nil
	case 'P', 'p':
		return loc.percent(n, withDefault(2)), nil
	case 'E', 'e':
		return localizeSeparator(exponential(n.float(), withDefault(6), specifier), loc), nil
	case 'G', 'g':
		if precision <= 0 {
			return localizeSeparator(n.general(), loc), nil
		}
		text := strconv.FormatFloat(n.float(), 'g', precision, 64)
		if specifier == 'G' {
			text = strings.ToUpper(text)
		}
		return localizeSeparator(text, loc), nil
	default:
		return "", fmt.Errorf("%w: %q", errSpecifier, spec)
	}
}

// hexDigits renders the two's complement of negative values on the size of their type.
func hexDigits(n numeric) string {
	if n.kind == reflect.Uint64 {
		return strconv.FormatUint(n.u, 16)
	}

	if n.i >= 0 {
		return strconv.FormatInt(n.i, 16)
	}

	mask := uint64(math.MaxUint64)
	if n.bits < 64 {
		mask = 1<<uint(n.bits) - 1
	}
	return strconv.FormatUint(uint64(n.i)&mask, 16)
}

// padDigits left pads digits with zeros up to width, keeping the sign in front.
func padDigits(digits string, width int) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	if missing := width - len(digits); missing > 0 {
		digits = strings.Repeat("0", missing) + digits
	}
	return sign + digits
}

// exponential renders mantissa and a signed exponent of at least three digits.
func exponential(f float64, precision int, specifier byte) string {
	text := strconv.FormatFloat(f, 'e', precision, 64)
	mantissa, exponent, found := strings.Cut(text, "e")
	if !found {
		return text
	}

	sign := exponent[:1]
	exponent = exponent[1:]
	if len(exponent) < 3 {
		exponent = strings.Repeat("0", 3-len(exponent)) + exponent
	}

	marker := "e"
	if specifier == 'E' {
		marker = "E"
	}
	return mantissa + marker + sign + exponent
}

// groupDigits inserts group every three integer digits of a '.' separated number
// and swaps the decimal point for decimal.
func groupDigits(text, group, decimal string) string {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	integer, fraction, hasFraction := strings.Cut(text, ".")

	var builder strings.Builder
	builder.WriteString(sign)
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			builder.WriteString(group)
		}
		builder.WriteRune(digit)
	}

	if hasFraction {
		builder.WriteString(decimal)
		builder.WriteString(fraction)
	}
	return builder.String()
}

func localizeSeparator(text string, loc locale) string {
	if separator := loc.decimalSeparator(); separator != "." {
		return strings.Replace(text, ".", separator, 1)
	}
	return text
}
