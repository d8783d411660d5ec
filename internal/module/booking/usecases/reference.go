package usecases

import (
	"strings"

	"reservation-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// referenceEncodedLength is 128 bits in 5-bit groups, the last one padded.
const referenceEncodedLength = 26

// referenceEncoder is a base32 shortuuid.Encoder over ReferenceAlphabet.
// Leading characters carry only random bits of a v4 uuid.
type referenceEncoder struct{}

func (referenceEncoder) Encode(u uuid.UUID) string {
	var (
		sb   strings.Builder
		acc  uint
		bits uint
	)
	sb.Grow(referenceEncodedLength)
	for _, b := range u {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(ReferenceAlphabet[(acc>>bits)&31])
		}
		acc &= 1<<bits - 1
	}
	if bits > 0 {
		sb.WriteByte(ReferenceAlphabet[(acc<<(5-bits))&31])
	}
	return sb.String()
}

func (referenceEncoder) Decode(s string) (uuid.UUID, error) {
	var u uuid.UUID
	if len(s) != referenceEncodedLength {
		return u, errors.InvalidInput("invalid reference code length")
	}

	var (
		acc  uint
		bits uint
		i    int
	)
	for j := 0; j < len(s); j++ {
		v := strings.IndexByte(ReferenceAlphabet, s[j])
		if v < 0 {
			return uuid.UUID{}, errors.InvalidInput("invalid reference code character")
		}
		acc = acc<<5 | uint(v)
		bits += 5
		if bits >= 8 && i < len(u) {
			bits -= 8
			u[i] = byte(acc >> bits)
			i++
			acc &= 1<<bits - 1
		}
	}
	return u, nil
}
