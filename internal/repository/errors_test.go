package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Error(t *testing.T) {
	testCases := map[string]struct {
		err      *NotFoundError
		expected string
	}{
		"should format error message with all fields": {
			err: &NotFoundError{
				Resource: "user",
				Key:      "username",
				Value:    "billy",
			},
			expected: "user with username billy not found",
		},
		"should keep empty value": {
			err:      &NotFoundError{Resource: "user", Key: "username"},
			expected: "user with username  not found",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := &NotFoundError{Resource: "user", Key: "username", Value: "billy"}

	testCases := map[string]struct {
		err      error
		expected bool
	}{
		"direct":  {err: notFound, expected: true},
		"wrapped": {err: fmt.Errorf("get user: %w", notFound), expected: true},
		"other":   {err: errors.New("boom"), expected: false},
		"nil":     {err: nil, expected: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFound(tc.err))
		})
	}
}
