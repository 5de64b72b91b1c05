package app

import (
	"math"
	"strings"

	"dietlog/internal/domain"
)

// optionalText trims s and maps blank input to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// optionalPositive normalises an optional measurement: nil and 0 mean
// "not set", negative or non-finite values are rejected.
func optionalPositive(field string, v *float64) (*float64, error) {
	if v == nil || *v == 0 {
		return nil, nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return nil, domain.NewValidationError(field, "must be a positive number")
	}
	out := *v
	return &out, nil
}
