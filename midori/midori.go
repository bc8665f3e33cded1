// Package midori implements the Midori-64 lightweight block cipher: the
// nibble-wise S-box and shuffle permutations, the (0,1,1,1) MixColumn
// matrix, the 128-bit key schedule, and the 15-round cipher driver.
//
// The S-box and both shuffle permutations are kept packed as 64-bit
// constants whose sixteen nibbles form the lookup table, indexed by nibble
// value 0..15; nibble.Read/Write centralize access to that packing.
package midori

import "github.com/coredrift/midori-cofb/nibble"

const (
	// sbox is Sb0: nibble i holds the substitution output for input i.
	sbox uint64 = 0xCAD3EBF789150246
	// shuffleFwd is the forward cell permutation: the nibble at output
	// position p holds the source position to read from.
	shuffleFwd uint64 = 0x0A5FE4B193C67D28
	// shuffleInv is shuffleFwd's inverse, same encoding.
	shuffleInv uint64 = 0x07E952BCF816AD43
)

// beta holds the sixteen round constants; the key schedule consumes
// beta[0:15], one per round. beta[15] is part of the reference constant
// table but unused by the 15-round schedule.
var beta = [16]uint16{
	0x15B3, 0x78C0, 0xA435, 0x6213, 0x104F, 0xD170, 0x0266, 0x0BCC,
	0x9481, 0x40B8, 0x7197, 0x228E, 0x5130, 0xF8CA, 0xDF90, 0x7C81,
}

const rounds = 15

// Key is the 128-bit Midori-64 master key, split into its two 64-bit halves.
type Key struct {
	K0, K1 uint64
}

// Schedule is the expanded key material for one Cipher invocation: the
// whitening key and the fifteen round keys.
type Schedule struct {
	White uint64
	Round [rounds]uint64
}

// Expand runs the key schedule: WK = K0 XOR K1, and for round i the j-th
// nibble of RK[i] is the j-th nibble of K0 (i even) or K1 (i odd), XOR'd
// with bit (15-j) of beta[i].
func Expand(k Key) Schedule {
	var s Schedule
	s.White = k.K0 ^ k.K1

	for i := 0; i < rounds; i++ {
		src := k.K0
		if i%2 != 0 {
			src = k.K1
		}

		var rk uint64
		for j := 0; j < 16; j++ {
			bit := (uint64(beta[i]) >> uint(15-j)) & 1
			rk = nibble.Write(rk, j, nibble.Read(src, j)^bit)
		}
		s.Round[i] = rk
	}

	return s
}

// SubCell applies the S-box to every nibble of s.
func SubCell(s uint64) uint64 {
	var out uint64
	for p := 0; p < 16; p++ {
		out = nibble.Write(out, p, nibble.Read(sbox, int(nibble.Read(s, p))))
	}
	return out
}

// ShuffleCell permutes the sixteen cells of s according to the forward cell
// permutation, or its inverse when inverse is true.
func ShuffleCell(s uint64, inverse bool) uint64 {
	table := shuffleFwd
	if inverse {
		table = shuffleInv
	}

	var out uint64
	for p := 0; p < 16; p++ {
		src := int(nibble.Read(table, p))
		out = nibble.Write(out, p, nibble.Read(s, src))
	}
	return out
}

// MixColumn applies the (0,1,1,1) binary MDS-like matrix to each of the four
// 4-nibble columns: every nibble becomes the XOR of the other three in its
// column. Applying MixColumn twice is the identity.
func MixColumn(s uint64) uint64 {
	var out uint64
	for col := 0; col < 4; col++ {
		base := col * 4

		var vals [4]uint64
		var parity uint64
		for k := 0; k < 4; k++ {
			vals[k] = nibble.Read(s, base+k)
			parity ^= vals[k]
		}
		for k := 0; k < 4; k++ {
			out = nibble.Write(out, base+k, parity^vals[k])
		}
	}
	return out
}

// KeyAdd XORs the round key into the state.
func KeyAdd(s, k uint64) uint64 {
	return s ^ k
}

// Cipher runs Midori-64 forward over state under key k: initial whitening,
// fifteen full rounds of SubCell/ShuffleCell/MixColumn/KeyAdd, a final
// SubCell, and final whitening.
func Cipher(state uint64, k Key) uint64 {
	sched := Expand(k)

	s := KeyAdd(state, sched.White)
	for i := 0; i < rounds; i++ {
		s = SubCell(s)
		s = ShuffleCell(s, false)
		s = MixColumn(s)
		s = KeyAdd(s, sched.Round[i])
	}
	s = SubCell(s)

	return KeyAdd(s, sched.White)
}
