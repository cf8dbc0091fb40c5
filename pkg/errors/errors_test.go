package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Clone(ErrDuplicate, "student already exists")
	assert.True(t, stderrors.Is(err, ErrDuplicate))
	assert.False(t, stderrors.Is(err, ErrValidation))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, ErrInternal.Code, "write data document")

	assert.True(t, stderrors.Is(err, ErrInternal))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	typed := Clone(ErrNotFound, "course not found")
	assert.Equal(t, ErrNotFound.Code, FromError(typed).Code)
	assert.Equal(t, ErrNotFound.Code, FromError(fmt.Errorf("wrapped: %w", typed)).Code)

	plain := stderrors.New("boom")
	norm := FromError(plain)
	require.NotNil(t, norm)
	assert.Equal(t, ErrInternal.Code, norm.Code)
}

func TestCloneOverridesMessage(t *testing.T) {
	err := Clone(ErrValidation, "gpa out of range")
	assert.Equal(t, "gpa out of range", err.Message)
	assert.Equal(t, ErrValidation.Code, err.Code)

	same := Clone(ErrValidation, "")
	assert.Equal(t, ErrValidation.Message, same.Message)
}
