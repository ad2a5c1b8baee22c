// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives stable ASCII identifiers from display names.
//
// Reading paths and phases that omit an explicit id are keyed by the slug of
// their name, so "Bandes Dessinées" becomes "bandes-dessinees".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From lowercases s, strips accents and joins every run of letters or digits
// with a single hyphen. Non-ASCII letters that have no decomposition are dropped.
func From(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, transform.RemoveFunc(isMark)), s)
	if err != nil {
		stripped = s
	}

	var builder strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if !isSlugRune(r) {
			pendingHyphen = builder.Len() > 0
			continue
		}
		if pendingHyphen {
			builder.WriteByte('-')
			pendingHyphen = false
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
