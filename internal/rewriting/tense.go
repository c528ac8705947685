package rewriting

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const wordPunct = `.,;:!?"()[]{}`

// bare lower-cases a word and strips surrounding punctuation
func bare(word string) string {
	return strings.ToLower(strings.Trim(word, wordPunct))
}

// swapCore replaces the letters of word with core, keeping surrounding
// punctuation and an initial capital
func swapCore(word, core string) string {
	start := strings.IndexFunc(word, func(r rune) bool { return !strings.ContainsRune(wordPunct, r) })
	if start < 0 {
		return core
	}
	end := strings.LastIndexFunc(word, func(r rune) bool { return !strings.ContainsRune(wordPunct, r) })
	_, size := utf8.DecodeRuneInString(word[end:])
	inner := word[start : end+size]
	if first, _ := utf8.DecodeRuneInString(inner); unicode.IsUpper(first) {
		core = capitalize(core)
	}
	return word[:start] + core + word[end+size:]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

// isShortCVC reports whether a one-syllable word ends consonant-vowel-consonant
// and so doubles its final letter before a suffix (plan, run, set)
func isShortCVC(w string) bool {
	n := len(w)
	if n < 3 || strings.ContainsAny(w, "-' ") {
		return false
	}
	last := w[n-1]
	if isVowel(last) || last == 'w' || last == 'x' || last == 'y' || !isVowel(w[n-2]) || isVowel(w[n-3]) {
		return false
	}
	groups := 0
	prev := false
	for i := 0; i < n; i++ {
		v := isVowel(w[i])
		if v && !prev {
			groups++
		}
		prev = v
	}
	return groups == 1
}

// isGerund reports whether word is a verb in its -ing form
func (e *Engine) isGerund(word string) bool {
	w := bare(word)
	if len(w) < 5 || !strings.HasSuffix(w, "ing") || e.lex.IsNonGerund(w) {
		return false
	}
	return !strings.ContainsAny(w[:len(w)-3], "0123456789")
}

// regularPast builds the past tense of a regular base verb
func regularPast(base string) string {
	n := len(base)
	switch {
	case n == 0:
		return base
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case n > 1 && base[n-1] == 'y' && !isVowel(base[n-2]):
		return base[:n-1] + "ied"
	case isShortCVC(base):
		return base + base[n-1:] + "ed"
	default:
		return base + "ed"
	}
}

// pastOfBase converts a base verb to past tense, honoring irregulars
func (e *Engine) pastOfBase(base string) string {
	base = strings.ToLower(base)
	if past, ok := e.lex.IrregularPast(base); ok {
		return past
	}
	return regularPast(base)
}

// pastOfGerund converts "creating" to "created", "teaching" to "taught"
func (e *Engine) pastOfGerund(gerund string) string {
	w := bare(gerund)
	stem := strings.TrimSuffix(w, "ing")

	candidates := []string{stem, stem + "e"}
	if n := len(stem); n > 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) {
		candidates = append(candidates, stem[:n-1])
	}
	for _, c := range candidates {
		if past, ok := e.lex.IrregularPast(c); ok {
			return past
		}
	}

	// Doubled consonants and dropped e both cancel out: plann+ed, creat+ed
	if n := len(stem); n > 1 && stem[n-1] == 'y' && !isVowel(stem[n-2]) {
		return stem[:n-1] + "ied"
	}
	return stem + "ed"
}

// gerundOfBase converts "write" to "writing", "run" to "running"
func gerundOfBase(base string) string {
	switch {
	case strings.HasSuffix(base, "ie"):
		return strings.TrimSuffix(base, "ie") + "ying"
	case strings.HasSuffix(base, "e") && !strings.HasSuffix(base, "ee") && len(base) > 2:
		return strings.TrimSuffix(base, "e") + "ing"
	case isShortCVC(base):
		return base + base[len(base)-1:] + "ing"
	default:
		return base + "ing"
	}
}

// gerundOfPast converts a past-tense verb back to its -ing form so it can
// follow "by". Words that are not past-tense verbs are returned unchanged.
func (e *Engine) gerundOfPast(past string) string {
	w := bare(past)
	if base, ok := e.lex.IrregularBase(w); ok {
		return gerundOfBase(base)
	}
	switch {
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return strings.TrimSuffix(w, "ied") + "ying"
	case strings.HasSuffix(w, "eed"):
		return strings.TrimSuffix(w, "d") + "ing"
	case strings.HasSuffix(w, "ed") && len(w) > 3:
		return strings.TrimSuffix(w, "ed") + "ing"
	}
	return w
}
