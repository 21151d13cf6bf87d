package mError

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecErrorMessage(t *testing.T) {
	err := InvalidEncoding("odd length %d", 3)
	assert.Equal(t, "(error) invalid encoding: odd length 3", err.Error())
	assert.Equal(t, "(error) capacity exceeded", ErrCapacityExceeded.Error())
}

func TestCodecErrorIsMatchesKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"invalid encoding", InvalidEncoding("x"), ErrInvalidEncoding, true},
		{"capacity exceeded", CapacityExceeded("y"), ErrCapacityExceeded, true},
		{"kind mismatch", InvalidEncoding("x"), ErrCapacityExceeded, false},
		{"wrapped", fmt.Errorf("decompress: %w", CapacityExceeded("z")), ErrCapacityExceeded, true},
		{"foreign target", InvalidEncoding("x"), errors.New("invalid encoding"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestCodecErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", InvalidEncoding("zero run at pair %d", 4))

	var ce *CodecError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, KIND_INVALID_ENCODING, ce.Kind)
	assert.Equal(t, CODEC_ERROR_SEVERITY_ERROR, ce.Severity)
	assert.Equal(t, "zero run at pair 4", ce.Message)
}
