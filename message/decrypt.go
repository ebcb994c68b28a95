package message

import (
	"github.com/Hadidomena/caesarCipher/cryptography"
	"github.com/Hadidomena/caesarCipher/dictionary"
	"github.com/Hadidomena/caesarCipher/validation"
)

// NoShift is reported when no shift produced a single dictionary word.
const NoShift = -1

// Candidate is the text obtained by undoing one shift, with its score.
type Candidate struct {
	Shift      int
	Plaintext  string
	ValidWords int
}

// Result is the outcome of a brute-force search. Found is false when no
// candidate contained a valid word; Shift is then NoShift and Plaintext empty.
type Result struct {
	Shift      int
	Plaintext  string
	ValidWords int
	Found      bool
}

// DecryptionTarget is a ciphertext encrypted with an unknown shift.
type DecryptionTarget struct {
	Message
}

func NewDecryptionTarget(text string, words *dictionary.Dictionary) DecryptionTarget {
	return DecryptionTarget{Message: NewMessage(text, words)}
}

// Candidates shifts the ciphertext by every shift from 0 to 25, in order.
// Candidate.Shift is the shift that turns the ciphertext into the candidate;
// a text encrypted with shift k is recovered at InverseShift(k).
func (t DecryptionTarget) Candidates() []Candidate {
	candidates := make([]Candidate, 0, cryptography.AlphabetSize)
	for shift := 0; shift < cryptography.AlphabetSize; shift++ {
		plaintext := t.ApplyShift(shift)
		candidates = append(candidates, Candidate{
			Shift:      shift,
			Plaintext:  plaintext,
			ValidWords: validation.CountWords(t.words, plaintext),
		})
	}
	return candidates
}

// Decrypt picks the candidate with the most valid words. Ties keep the lowest
// shift, and a candidate with no valid words is never picked.
func (t DecryptionTarget) Decrypt() Result {
	best := Result{Shift: NoShift}
	for _, candidate := range t.Candidates() {
		if candidate.ValidWords > best.ValidWords {
			best = Result{
				Shift:      candidate.Shift,
				Plaintext:  candidate.Plaintext,
				ValidWords: candidate.ValidWords,
				Found:      true,
			}
		}
	}
	return best
}
