package utils

import (
	"errors"
	"regexp"
)

// The model wraps its JSON payload in prose more often than not. These pull
// the first greedy brace/bracket span (first opener to last closer) out of
// the reply. Permissive on surrounding text, brittle on unrelated braces in
// prose or multiple JSON blocks; that is the documented contract with an
// output format we do not control.
var (
	ErrNoJSONObject = errors.New("no JSON object found in response")
	ErrNoJSONArray  = errors.New("no JSON array found in response")
)

var (
	objectPattern = regexp.MustCompile(`\{[\s\S]*\}`)
	arrayPattern  = regexp.MustCompile(`\[[\s\S]*\]`)
)

// ExtractJSONObject returns the first {...} span in text.
func ExtractJSONObject(text string) (string, error) {
	match := objectPattern.FindString(text)
	if match == "" {
		return "", ErrNoJSONObject
	}
	return match, nil
}

// ExtractJSONArray returns the first [...] span in text.
func ExtractJSONArray(text string) (string, error) {
	match := arrayPattern.FindString(text)
	if match == "" {
		return "", ErrNoJSONArray
	}
	return match, nil
}
