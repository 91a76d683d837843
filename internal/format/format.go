// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package format

import (
	"strings"
	"unicode/utf8"
)

// maxIndex bounds index and alignment values so that parsing cannot overflow.
const maxIndex = 1_000_000

// item is a parsed {index[,alignment][:formatString]} placeholder.
type item struct {
	index     int
	alignment int
	spec      string
}

// Sprintf substitutes args into template by position. A nil provider selects Invariant.
// The returned error is always an *Error and nothing is rendered when it is not nil.
func Sprintf(provider Provider, template string, args ...any) (string, error) {
	if provider == nil {
		provider = Invariant
	}

	var builder strings.Builder
	builder.Grow(len(template))

	for pos := 0; pos < len(template); {
		switch template[pos] {
		case '{':
			if pos+1 < len(template) && template[pos+1] == '{' {
				builder.WriteByte('{')
				pos += 2
				continue
			}

			parsed, next, err := parseItem(template, pos)
			if err != nil {
				return "", err
			}

			if parsed.index >= len(args) {
				return "", newError(template, pos, "index must be less than the size of the argument list")
			}

			text, err := provider.FormatValue(args[parsed.index], parsed.spec)
			if err != nil {
				return "", newError(template, pos, err.Error())
			}

			writeAligned(&builder, text, parsed.alignment)
			pos = next
		case '}':
			if pos+1 < len(template) && template[pos+1] == '}' {
				builder.WriteByte('}')
				pos += 2
				continue
			}

			return "", newError(template, pos, "unexpected closing brace")
		default:
			builder.WriteByte(template[pos])
			pos++
		}
	}

	return builder.String(), nil
}

// parseItem reads the format item opening at start and returns it with the offset
// following its closing brace.
func parseItem(template string, start int) (item, int, error) {
	pos := start + 1

	index, pos, ok := parseNumber(template, pos)
	if !ok {
		return item{}, 0, newError(template, start, "format item must start with an argument index")
	}
	pos = skipSpaces(template, pos)

	alignment := 0
	if pos < len(template) && template[pos] == ',' {
		pos = skipSpaces(template, pos+1)

		negative := false
		if pos < len(template) && template[pos] == '-' {
			negative = true
			pos++
		}

		width, next, ok := parseNumber(template, pos)
		if !ok {
			return item{}, 0, newError(template, start, "alignment must be an integer")
		}

		alignment = width
		if negative {
			alignment = -width
		}
		pos = skipSpaces(template, next)
	}

	var spec strings.Builder
	if pos < len(template) && template[pos] == ':' {
		pos++
		for {
			if pos >= len(template) {
				return item{}, 0, newError(template, start, "unterminated format item")
			}

			c := template[pos]
			if c == '}' {
				if pos+1 < len(template) && template[pos+1] == '}' {
					spec.WriteByte('}')
					pos += 2
					continue
				}
				break
			}

			if c == '{' {
				if pos+1 < len(template) && template[pos+1] == '{' {
					spec.WriteByte('{')
					pos += 2
					continue
				}
				return item{}, 0, newError(template, start, "unexpected opening brace in format string")
			}

			spec.WriteByte(c)
			pos++
		}
	}

	if pos >= len(template) {
		return item{}, 0, newError(template, start, "unterminated format item")
	}
	if template[pos] != '}' {
		return item{}, 0, newError(template, start, "unexpected character in format item")
	}

	return item{index: index, alignment: alignment, spec: spec.String()}, pos + 1, nil
}

func parseNumber(template string, pos int) (int, int, bool) {
	value := 0
	digits := 0
	for pos < len(template) && template[pos] >= '0' && template[pos] <= '9' {
		value = value*10 + int(template[pos]-'0')
		if value >= maxIndex {
			return 0, pos, false
		}
		digits++
		pos++
	}

	return value, pos, digits > 0
}

func skipSpaces(template string, pos int) int {
	for pos < len(template) && template[pos] == ' ' {
		pos++
	}
	return pos
}

func writeAligned(builder *strings.Builder, text string, alignment int) {
	width := alignment
	if width < 0 {
		width = -width
	}

	padding := width - utf8.RuneCountInString(text)
	if padding <= 0 {
		builder.WriteString(text)
		return
	}

	if alignment > 0 {
		builder.WriteString(strings.Repeat(" ", padding))
		builder.WriteString(text)
		return
	}

	builder.WriteString(text)
	builder.WriteString(strings.Repeat(" ", padding))
}
