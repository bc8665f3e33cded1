package cofb

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		k0, k1    uint64
		nonce     uint64
		plaintext uint64
	}{
		{"scenario-1", 0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x0123456789ABCDEF, 0xAAAABBBBCCCCDDDD},
		{"scenario-2-zero-nonce", 0x0123456789ABCDEF, 0xFEDCBA9876543210, 0, 0},
		{"scenario-3-zero-key-zero-nonce", 0, 0, 0, 0},
		{"mixed-bits", 0xDEADBEEFCAFEBABE, 0x1122334455667788, 0x9988776655443322, 0x7766554433221100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, tag := Encrypt(tc.k0, tc.k1, tc.nonce, []uint64{tc.plaintext})
			require.Len(t, ciphertext, 1)

			plaintext, computedTag := Decrypt(tc.k0, tc.k1, tc.nonce, ciphertext, tag)
			require.Len(t, plaintext, 1)

			assert.Equal(t, tc.plaintext, plaintext[0], "recovered plaintext")
			assert.Equal(t, tag, computedTag, "recomputed tag")
		})
	}
}

func TestDecryptAlwaysReturnsComputedTagEvenOnMismatch(t *testing.T) {
	k0, k1, nonce := uint64(0x0123456789ABCDEF), uint64(0xFEDCBA9876543210), uint64(0x0123456789ABCDEF)
	ciphertext, tag := Encrypt(k0, k1, nonce, []uint64{0xAAAABBBBCCCCDDDD})

	wrongTag := tag ^ 1
	plaintext, computedTag := Decrypt(k0, k1, nonce, ciphertext, wrongTag)

	require.Len(t, plaintext, 1)
	assert.Equal(t, uint64(0xAAAABBBBCCCCDDDD), plaintext[0], "plaintext recovery is independent of the caller's expected tag")
	assert.Equal(t, tag, computedTag, "computed tag is the real tag regardless of what the caller expected")
	assert.False(t, ConstantTimeEqual(wrongTag, computedTag))
}

func TestTagAvalanche(t *testing.T) {
	k0, k1, nonce := uint64(0x0123456789ABCDEF), uint64(0xFEDCBA9876543210), uint64(0x0123456789ABCDEF)
	base := uint64(0xAAAABBBBCCCCDDDD)
	_, baseTag := Encrypt(k0, k1, nonce, []uint64{base})

	var totalFlipped int
	for bit := 0; bit < 64; bit++ {
		_, tag := Encrypt(k0, k1, nonce, []uint64{base ^ (1 << uint(bit))})
		totalFlipped += bits.OnesCount64(tag ^ baseTag)
	}

	avgFlipped := float64(totalFlipped) / 64.0
	assert.Greater(t, avgFlipped, 16.0, "flipping a plaintext bit should flip roughly half the tag's 64 bits")
	assert.Less(t, avgFlipped, 48.0)
}

func TestFieldStateResetsPerCall(t *testing.T) {
	k0, k1, nonce := uint64(0x1111111111111111), uint64(0x2222222222222222), uint64(0x3333333333333333)

	_, firstTag := Encrypt(k0, k1, nonce, []uint64{0x4444444444444444})
	_, secondTag := Encrypt(k0, k1, nonce, []uint64{0x4444444444444444})

	assert.Equal(t, firstTag, secondTag, "back-to-back encrypts of the same message must agree; field state must not leak across calls")
}

func TestEncryptPanicsOnWrongBlockCount(t *testing.T) {
	assert.Panics(t, func() { Encrypt(0, 0, 0, nil) })
	assert.Panics(t, func() { Encrypt(0, 0, 0, []uint64{0, 0}) })
}

func TestDecryptPanicsOnWrongBlockCount(t *testing.T) {
	assert.Panics(t, func() { Decrypt(0, 0, 0, nil, 0) })
	assert.Panics(t, func() { Decrypt(0, 0, 0, []uint64{0, 0}, 0) })
}

func TestMulGYFoldsTopIntoBottom(t *testing.T) {
	y := uint64(0x0123456789ABCDEF)
	got := mulGY(y)

	wantLow16 := (y>>48 ^ y&0xFFFF) & 0xFFFF
	assert.Equal(t, wantLow16, got&0xFFFF)
	assert.Equal(t, (y<<16)&^uint64(0xFFFF), got&^uint64(0xFFFF))
}

func TestMaskGenExtractsMiddleBits(t *testing.T) {
	y := uint64(0xAAAA_BBBBCCCC_DDDD)
	assert.Equal(t, uint32(0xBBBBCCCC), maskGen(y))
}
