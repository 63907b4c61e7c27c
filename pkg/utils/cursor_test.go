package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trendkart/pkg/errors"
)

func TestCursorRoundTrip(t *testing.T) {
	original := &Cursor{Name: "Casual Linen Shirt", ID: "abc123"}

	decoded, err := DecodeCursor(original.Encode())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeCursorEmptyIsNil(t *testing.T) {
	decoded, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	for _, encoded := range []string{"!!!not-base64!!!", "bm90LWpzb24"} {
		_, err := DecodeCursor(encoded)
		assert.True(t, apperrors.Is(err, "BAD_REQUEST"), "input %q", encoded)
	}
}
