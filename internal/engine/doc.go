// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package engine describes the narrow contract between logbridge and the external
// logging engine that performs the real routing, filtering and output of entries.
// Concrete engines live in the subpackages.
package engine
