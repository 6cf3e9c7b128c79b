// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package format renders backend payloads as markdown-like plain text for
// the MCP host. Formatters are pure functions: no I/O, deterministic
// output, numeric values at two-decimal precision unless integral.
package format

import (
	"fmt"
	"sort"
	"strings"
)

// evidenceLimit clamps per-instance full text when truncation is on. The
// primary quote is never clamped.
const evidenceLimit = 200

// GroundingBand names the qualitative band for a signed grounding
// strength in [-1, 1].
func GroundingBand(strength float64) string {
	switch {
	case strength > 0.7:
		return "Well-supported"
	case strength >= 0.3:
		return "Moderate"
	case strength >= 0.0:
		return "Unexplored/Tentative"
	default:
		return "Contested"
	}
}

// GroundingPercent renders a signed grounding strength as a signed
// percentage, e.g. "+72%" or "-12%".
func GroundingPercent(strength float64) string {
	return fmt.Sprintf("%+.0f%%", strength*100)
}

// DiversityPercent renders a diversity score in [0, 1] as a percentage.
func DiversityPercent(diversity float64) string {
	return fmt.Sprintf("%.0f%%", diversity*100)
}

// DiversityGlyph combines the sign of grounding with the diversity
// magnitude into the authenticated-diversity glyph.
func DiversityGlyph(grounding, diversity float64) string {
	if grounding < 0 {
		return "❌"
	}
	switch {
	case diversity >= 0.6:
		return "✅"
	case diversity >= 0.3:
		return "✓"
	default:
		return "⚠"
	}
}

// grounding renders "Well-supported (+72%)".
func grounding(strength float64) string {
	return fmt.Sprintf("%s (%s)", GroundingBand(strength), GroundingPercent(strength))
}

// truncate clamps s to limit runes with a trailing ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// num renders a float at two decimals.
func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// noResults is the single-line empty-payload message with a hint.
func noResults(what, hint string) string {
	if hint == "" {
		return fmt.Sprintf("No %s found.", what)
	}
	return fmt.Sprintf("No %s found. %s", what, hint)
}

// sortedKeys returns the keys of m in lexical order so map-backed
// sections render deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// kv writes "- key: value" when value is non-empty.
func kv(b *strings.Builder, key, value string) {
	if value != "" {
		fmt.Fprintf(b, "- %s: %s\n", key, value)
	}
}

// renderValue renders a JSON-decoded value compactly. Numbers decoded
// from JSON arrive as float64; integral ones render without a fraction.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return num(t)
	case map[string]any:
		parts := make([]string, 0, len(t))
		for _, k := range sortedKeys(t) {
			parts = append(parts, fmt.Sprintf("%s=%s", k, renderValue(t[k])))
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, renderValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
