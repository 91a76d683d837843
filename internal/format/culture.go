// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package format

import (
	"reflect"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// culture renders numbers following the conventions of a language.
type culture struct {
	tag     language.Tag
	decimal string
}

// Culture returns a Provider that applies the number conventions of tag: decimal and
// group separators for the default, F, N and P renderings. Dates keep their Go layouts.
func Culture(tag language.Tag) Provider {
	return &culture{
		tag:     tag,
		decimal: probeDecimalSeparator(message.NewPrinter(tag)),
	}
}

// probeDecimalSeparator renders 1.5 and keeps what sits between the digits.
// Languages without latin digits fall back to '.'.
func probeDecimalSeparator(printer *message.Printer) string {
	text := printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if !strings.HasPrefix(text, "1") || !strings.HasSuffix(text, "5") || len(text) < 3 {
		return "."
	}
	return text[1 : len(text)-1]
}

func (c *culture) FormatValue(value any, spec string) (string, error) {
	return formatValue(value, spec, c)
}

func (c *culture) decimalSeparator() string {
	return c.decimal
}

func (c *culture) grouped(n numeric, precision int) string {
	return message.NewPrinter(c.tag).Sprint(number.Decimal(
		c.numberValue(n),
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}

func (c *culture) percent(n numeric, precision int) string {
	return message.NewPrinter(c.tag).Sprint(number.Percent(
		n.float(),
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}

func (c *culture) numberValue(n numeric) any {
	switch {
	case !n.integral():
		return n.f
	case n.kind == reflect.Uint64:
		return n.u
	default:
		return n.i
	}
}
