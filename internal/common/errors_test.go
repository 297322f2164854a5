package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "bad value", ErrInvalidInput)
	assert.Equal(t, "CONFIG_ERROR: bad value: invalid input", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))

	bare := NewAppError("INTERNAL", "boom", nil)
	assert.Equal(t, "INTERNAL: boom", bare.Error())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))

	wrapped := WrapError(ErrAIUnavailable, "calling model")
	assert.EqualError(t, wrapped, "calling model: ai collaborator unavailable")
	assert.True(t, errors.Is(wrapped, ErrAIUnavailable))
}

func TestStatusHelpers(t *testing.T) {
	err := InvalidArgumentErrorf("unsupported document_type %q", "receipt")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), `"receipt"`)

	assert.Equal(t, codes.Internal, status.Code(InternalError("boom")))
}
