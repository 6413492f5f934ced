package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrMalformedWindow = errors.New("malformed campaign window")
)

// MalformedWindowError reports a campaign whose start or end date does not parse.
type MalformedWindowError struct {
	Campaign string
	Field    string
	Value    string
	Err      error
}

func (e *MalformedWindowError) Error() string {
	return fmt.Sprintf("campaign %q: invalid %s %q: %v", e.Campaign, e.Field, e.Value, e.Err)
}

func (e *MalformedWindowError) Unwrap() error {
	return e.Err
}

func (e *MalformedWindowError) Is(target error) bool {
	return target == ErrMalformedWindow
}
