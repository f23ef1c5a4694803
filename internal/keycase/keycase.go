// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keycase derives canonical configuration keys.
//
// Every schema key, every file override and every environment variable is
// addressed by the UPPER_SNAKE_CASE name produced by [Derive]. Changing the
// algorithm renames every stored configuration value, so it must stay stable.
package keycase

import (
	"regexp"
	"strings"
	"unicode"
)

var upperSnake = regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)

// IsCanonical reports whether key is already in UPPER_SNAKE_CASE form.
func IsCanonical(key string) bool {
	return upperSnake.MatchString(key)
}

// Derive converts an arbitrary source key into its canonical form.
//
// Examples:
//
//	apiUrl       -> API_URL
//	myAPIKey     -> MY_API_KEY
//	enable-new-ui -> ENABLE_NEW_UI
//	MAX_RETRIES  -> MAX_RETRIES
func Derive(key string) string {
	if key == "" {
		return ""
	}
	if IsCanonical(key) {
		return key
	}

	words := Words(key)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return strings.Join(words, "_")
}

// Words splits key into its words without changing their case.
//
// Separators (anything that is neither a letter nor a digit) are dropped and
// end the current word. A lower-to-upper transition starts a new word. An
// uppercase run followed by a lowercase letter is an acronym followed by a
// word, so the split goes before the last capital of the run. Digits stay
// with the word they follow.
func Words(key string) []string {
	runes := []rune(key)
	words := make([]string, 0, 4)
	cur := make([]rune, 0, len(runes))

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if len(cur) > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || nextLower {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	return words
}
