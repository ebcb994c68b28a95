package validation

import "strings"

// Punctuation is trimmed from both ends of a token before lookup.
const Punctuation = " !@#$%^&*()-_+={}[]|\\:;'<>?,./\""

// WordSet is the membership query a dictionary provides.
type WordSet interface {
	Contains(word string) bool
}

// Normalize lowercases token and trims Punctuation from its ends. Interior
// characters are kept.
func Normalize(token string) string {
	return strings.Trim(strings.ToLower(token), Punctuation)
}

// IsWord reports whether token is a dictionary word, ignoring case and
// surrounding punctuation. A token made only of punctuation is never valid.
func IsWord(words WordSet, token string) bool {
	word := Normalize(token)
	if word == "" {
		return false
	}
	return words.Contains(word)
}

// CountWords splits text on whitespace and counts the valid words.
func CountWords(words WordSet, text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		if IsWord(words, token) {
			count++
		}
	}
	return count
}
