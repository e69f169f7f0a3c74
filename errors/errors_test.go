package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{name: "malformed", class: ErrorMalformed, expected: "malformed"},
		{name: "semantic", class: ErrorSemantic, expected: "semantic"},
		{name: "internal", class: ErrorInternal, expected: "internal"},
		{name: "unknown value", class: ErrorClass(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestWrapFormat(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := Wrap(cause, "Loader", "Load", "parse document")

	require.Error(t, err)
	assert.Equal(t, "Loader.Load: parse document failed: "+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "Loader", "Load", "parse"))
	assert.NoError(t, WrapMalformed(nil, "Loader", "Load", "parse"))
	assert.NoError(t, WrapSemantic(nil, "Validator", "Validate", "check"))
	assert.NoError(t, WrapInternal(nil, "Server", "Run", "listen"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{
			name:     "wrapped malformed sentinel",
			err:      fmt.Errorf("reading schema: %w", ErrMalformedDocument),
			expected: ErrorMalformed,
		},
		{
			name:     "missing section",
			err:      fmt.Errorf("%w: variables", ErrMissingSection),
			expected: ErrorMalformed,
		},
		{
			name:     "unresolved reference",
			err:      fmt.Errorf("%w: FOO", ErrUnresolvedReference),
			expected: ErrorSemantic,
		},
		{
			name:     "duplicate variable",
			err:      fmt.Errorf("%w: Primary Energy|Coal", ErrDuplicateVariable),
			expected: ErrorSemantic,
		},
		{
			name:     "unknown code",
			err:      fmt.Errorf("%w: %q", ErrUnknownCode, "Hydrogen"),
			expected: ErrorSemantic,
		},
		{
			name:     "hierarchy violation",
			err:      ErrHierarchyViolation,
			expected: ErrorSemantic,
		},
		{
			name:     "plain error is internal",
			err:      errors.New("disk on fire"),
			expected: ErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestClassifiedWrappersCarryClass(t *testing.T) {
	cause := errors.New("boom")

	err := WrapSemantic(cause, "Validator", "Validate", "check references")

	var ce *ClassifiedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrorSemantic, ce.Class)
	assert.Equal(t, "Validator", ce.Component)
	assert.Equal(t, "Validate", ce.Operation)
	assert.ErrorIs(t, err, cause)

	// The class set by the wrapper wins over sentinel matching.
	assert.True(t, IsSemantic(err))
	assert.False(t, IsMalformed(err))
}

func TestIsMalformedOnClassifiedError(t *testing.T) {
	err := WrapMalformed(errors.New("unexpected node kind"), "Loader", "Load", "decode yaml")

	assert.True(t, IsMalformed(err))
	assert.False(t, IsSemantic(err))
	assert.Equal(t, ErrorMalformed, Classify(err))
}
