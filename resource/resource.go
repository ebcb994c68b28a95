package resource

import (
	"fmt"
	"os"
)

// LoadError reports that a startup resource (word list, story, word table)
// could not be opened or read.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load resource %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err for the named resource.
func NewLoadError(resource string, err error) *LoadError {
	return &LoadError{Resource: resource, Err: err}
}

// ReadStory returns the whole content of the ciphertext file as one string.
func ReadStory(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewLoadError(path, err)
	}
	return string(data), nil
}
