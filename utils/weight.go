package utils

import "errors"

// ValidateWeight rejects obviously bad portion weights before any model or
// store interaction happens.
func ValidateWeight(grams float64) error {
	if grams <= 0 {
		return errors.New("weight must be positive")
	}
	// Sanity check to avoid garbage input
	if grams > 5000 {
		return errors.New("weight out of plausible range")
	}
	return nil
}
