// Package secrets resolves secret values the commands need, such as the
// Gemini API key.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret comes from. File takes precedence over
// Value when both are set; Name is only used to give errors context.
type Source struct {
	Name  string
	Value string
	File  string
}

// Load resolves the secret from the source and trims surrounding whitespace.
// It fails when the file cannot be read or when neither File nor Value yield
// a non-empty secret.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret != "" {
		return secret, nil
	}

	if file != "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	return "", fmt.Errorf("%s is not configured", name)
}
