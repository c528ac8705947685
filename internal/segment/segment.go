// Package segment splits free text into sentence and clause units for the rewrite engine.
package segment

import (
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// mojibake maps UTF-8 punctuation that was decoded as Windows-1252 back to the original rune
var mojibake = strings.NewReplacer(
	"â€“", "–",
	"â€”", "—",
	"â€™", "’",
	"â€˜", "‘",
	"â€œ", "“",
	"â€\u009d", "”",
	"â€¢", "•",
	"Â ", " ",
)

// Normalize applies NFC normalization and repairs common dash and quote mojibake
func Normalize(text string) string {
	return norm.NFC.String(mojibake.Replace(text))
}

// Sentences returns the sentences of text in order. A sentence ends at '.',
// '!' or '?' followed by whitespace or end of text, or at a newline.
// Fragments without any letter or digit are skipped. The sequence holds no
// state between iterations and may be ranged over any number of times.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		clean := Normalize(text)
		start := 0
		for i := 0; i < len(clean); i++ {
			end := -1
			switch clean[i] {
			case '\n', '\r':
				end = i
			case '.', '!', '?':
				if i+1 == len(clean) || isSpace(clean[i+1]) {
					end = i + 1
				}
			}
			if end < 0 {
				continue
			}
			if s := tidy(clean[start:end]); s != "" {
				if !yield(s) {
					return
				}
			}
			start = i + 1
		}
		if s := tidy(clean[start:]); s != "" {
			yield(s)
		}
	}
}

// Clauses returns the sentences of text further split on semicolons
func Clauses(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for sentence := range Sentences(text) {
			for _, part := range strings.Split(sentence, ";") {
				if s := tidy(part); s != "" {
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}

// tidy trims and collapses whitespace, returning "" for fragments with no content
func tidy(fragment string) string {
	s := strings.Join(strings.Fields(fragment), " ")
	if !HasContent(s) {
		return ""
	}
	return s
}

// HasContent reports whether s contains at least one letter or digit
func HasContent(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
