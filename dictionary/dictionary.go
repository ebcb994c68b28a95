// Package dictionary holds the set of words used to score decryption
// candidates. A Dictionary is immutable once loaded and safe to share.
package dictionary

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Hadidomena/caesarCipher/resource"
)

type Dictionary struct {
	words map[string]struct{}
}

// New builds a dictionary from the given words. Words are lowercased and
// empty entries are dropped.
func New(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		d.add(word)
	}
	return d
}

func (d *Dictionary) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		d.words[word] = struct{}{}
	}
}

// Load reads the word list file. Only the first line is used; it holds the
// words separated by spaces.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, resource.NewLoadError(path, err)
	}
	defer file.Close()

	d, err := Parse(file)
	if err != nil {
		return nil, resource.NewLoadError(path, err)
	}
	return d, nil
}

// Parse reads the first line of r as a whitespace separated word list.
// The line is read without a length limit.
func Parse(r io.Reader) (*Dictionary, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return New(strings.Fields(line)...), nil
}

// Contains reports whether word is in the dictionary. The lookup is exact;
// callers normalize first.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]
	return ok
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns a sorted copy of every entry.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	words := make([]string, 0, len(d.words))
	for word := range d.words {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
