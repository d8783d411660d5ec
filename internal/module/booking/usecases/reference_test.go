package usecases

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceEncoder(t *testing.T) {
	enc := referenceEncoder{}

	t.Run("generates without panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			code := shortuuid.NewWithEncoder(enc)
			assert.Len(t, code, referenceEncodedLength)
		})
	})

	t.Run("uses only the reference alphabet", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code := shortuuid.NewWithEncoder(enc)
			for _, c := range code {
				assert.True(t, strings.ContainsRune(ReferenceAlphabet, c), "unexpected %q in %s", c, code)
			}
		}
	})

	t.Run("decodes what it encodes", func(t *testing.T) {
		u := uuid.MustParse("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
		got, err := enc.Decode(enc.Encode(u))
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("zero uuid", func(t *testing.T) {
		assert.Equal(t, strings.Repeat("2", referenceEncodedLength), enc.Encode(uuid.UUID{}))
	})

	t.Run("rejects ambiguous characters", func(t *testing.T) {
		_, err := enc.Decode(strings.Repeat("O", referenceEncodedLength))
		assert.Error(t, err)
	})
}
