// Package message pairs a text with the dictionary it is scored against.
//
// EncryptedDraft encrypts a known plaintext with a chosen shift and keeps the
// ciphertext in step with that shift. DecryptionTarget recovers the plaintext
// of a ciphertext whose shift is unknown by trying every shift.
package message

import (
	"github.com/Hadidomena/caesarCipher/cryptography"
	"github.com/Hadidomena/caesarCipher/dictionary"
)

// Message is an immutable text bound to a shared dictionary.
type Message struct {
	text  string
	words *dictionary.Dictionary
}

func NewMessage(text string, words *dictionary.Dictionary) Message {
	return Message{text: text, words: words}
}

func (m Message) Text() string {
	return m.text
}

// ValidWords returns a copy of the dictionary entries.
func (m Message) ValidWords() []string {
	return m.words.Words()
}

// ApplyShift returns the message text shifted by shift.
func (m Message) ApplyShift(shift int) string {
	return cryptography.ApplyShift(m.text, shift)
}

// EncryptedDraft is a plaintext together with the shift used to encrypt it.
type EncryptedDraft struct {
	Message
	shift     int
	shiftMap  cryptography.ShiftMap
	encrypted string
}

// NewEncryptedDraft encrypts text right away. The shift is normalized into
// [0, 26).
func NewEncryptedDraft(text string, shift int, words *dictionary.Dictionary) *EncryptedDraft {
	d := &EncryptedDraft{Message: NewMessage(text, words)}
	d.ChangeShift(shift)
	return d
}

func (d *EncryptedDraft) Shift() int {
	return d.shift
}

// EncryptingMap returns a copy of the current shift map.
func (d *EncryptedDraft) EncryptingMap() cryptography.ShiftMap {
	return d.shiftMap
}

func (d *EncryptedDraft) EncryptedText() string {
	return d.encrypted
}

// ChangeShift replaces the shift and re-encrypts the text.
func (d *EncryptedDraft) ChangeShift(shift int) {
	d.shiftMap = cryptography.BuildShiftMap(shift)
	d.shift = d.shiftMap.Shift()
	d.encrypted = d.shiftMap.Apply(d.text)
}
