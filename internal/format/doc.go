// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package format renders composite format templates such as "x={0}" or "took {1:F2}s".
//
// A format item has the shape {index[,alignment][:formatString]}: index selects the
// argument by position, a positive alignment pads on the left and a negative one on
// the right, formatString is handed to the Provider together with the argument.
// Literal braces are written doubled, "{{" and "}}".
//
// Numeric arguments understand the standard specifiers D, E, F, G, N, P and X with an
// optional precision (for example "N0" or "D4"). time.Time arguments take a Go layout,
// and any argument accepts a fmt verb when the format string starts with '%'.
package format
