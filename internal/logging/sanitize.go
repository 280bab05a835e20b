// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package logging

import (
	"strings"
	"unicode"
)

// MaxLoggedValueLength bounds user-supplied strings written to logs.
const MaxLoggedValueLength = 200

// SanitizeValue makes a client-supplied string safe to log. Control
// characters, including CR and LF, are replaced so a value cannot forge
// extra log lines, and long values are truncated.
func SanitizeValue(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, s)
	return truncate(cleaned, MaxLoggedValueLength)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	// Back off to a rune boundary.
	cut := maxLen
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
