// Package cofb implements the COFB (COmbined FeedBack) AEAD driver over the
// Midori-64 block cipher. It encrypts or decrypts a single 64-bit payload
// block under a 128-bit key and 64-bit nonce, producing or recomputing a
// 64-bit authentication tag. Comparing tags is left to the caller.
//
// The reference driver this package follows never advances its block
// counter past a nonce-init step, one pre-payload step, and one
// payload-and-tag step, which pins the payload length at exactly one block;
// see the package-level design notes for the longer discussion. Encrypt and
// Decrypt both panic if handed any other number of blocks — that is a
// programming error in the caller, not a runtime condition the mode defines
// behavior for.
package cofb

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/coredrift/midori-cofb/gf"
	"github.com/coredrift/midori-cofb/midori"
)

// maskGen extracts the middle 32 bits of a 64-bit cipher output Y, seeding
// the field-kernel mask sequence as beta.
func maskGen(y uint64) uint32 {
	return uint32((y >> 16) & 0xFFFFFFFF)
}

// mulGY is the COFB feedback mixing function: rotate Y left by 16 bits,
// folding the displaced top 16 bits into the bottom 16 via XOR.
func mulGY(y uint64) uint64 {
	low16 := y & 0xFFFF
	top16 := y >> 48
	return (y << 16) | ((top16 ^ low16) & 0xFFFF)
}

// preStep runs one of the two pre-payload domain-separation iterations
// (counter value 1 or 2). There is no associated data in this mode's scope,
// so the feedback block is the zero block rather than real message
// content — both Encrypt and Decrypt must use the same placeholder here so
// the chaining state matches going into the payload step.
func preStep(st *gf.State, y uint64, exp int, k midori.Key) uint64 {
	msk := st.Oper(exp)
	gy := mulGY(y)
	bgy := uint64(0) ^ gy
	x := (uint64(msk) << 32) ^ bgy
	return midori.Cipher(x, k)
}

// Encrypt runs the COFB encryption driver over exactly one plaintext block,
// returning the one-block ciphertext and the authentication tag.
func Encrypt(k0, k1, nonce uint64, plaintext []uint64) (ciphertext []uint64, tag uint64) {
	if len(plaintext) != 1 {
		panic("cofb: Encrypt requires exactly one plaintext block")
	}
	k := midori.Key{K0: k0, K1: k1}
	b := plaintext[0]

	y := midori.Cipher(nonce, k)
	st := gf.NewState(maskGen(y))

	y = preStep(st, y, 1, k)
	y = preStep(st, y, 2, k)

	msk := st.Oper(3)
	gy := mulGY(y)
	bgy := b ^ gy
	c := y ^ b
	x := (uint64(msk) << 32) ^ bgy
	y = midori.Cipher(x, k)

	return []uint64{c}, y
}

// Decrypt runs the COFB decryption driver over exactly one ciphertext
// block, returning the recovered plaintext and the recomputed tag.
//
// Decrypt never short-circuits on a tag mismatch: it always finishes
// deriving computedTag before returning, regardless of whether it equals
// expectedTag, so that comparison timing cannot leak where a mismatch
// occurred. The comparison itself is the caller's responsibility; use
// ConstantTimeEqual.
func Decrypt(k0, k1, nonce uint64, ciphertext []uint64, expectedTag uint64) (plaintext []uint64, computedTag uint64) {
	if len(ciphertext) != 1 {
		panic("cofb: Decrypt requires exactly one ciphertext block")
	}
	_ = expectedTag // comparison is the caller's responsibility; see ConstantTimeEqual.

	k := midori.Key{K0: k0, K1: k1}
	c := ciphertext[0]

	y := midori.Cipher(nonce, k)
	st := gf.NewState(maskGen(y))

	y = preStep(st, y, 1, k)
	y = preStep(st, y, 2, k)

	msk := st.Oper(3)
	gy := mulGY(y)
	bgy := c ^ gy
	m := y ^ c
	bgy = y ^ bgy
	x := (uint64(msk) << 32) ^ bgy
	y = midori.Cipher(x, k)

	return []uint64{m}, y
}

// ConstantTimeEqual reports whether a and b are equal, comparing in time
// independent of where the first differing bit falls.
func ConstantTimeEqual(a, b uint64) bool {
	var ba, bb [8]byte
	binary.BigEndian.PutUint64(ba[:], a)
	binary.BigEndian.PutUint64(bb[:], b)
	return subtle.ConstantTimeCompare(ba[:], bb[:]) == 1
}
