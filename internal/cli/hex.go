package cli

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// parseBlock decodes a 16-character hex string into a big-endian uint64
// block.
func parseBlock(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) != 16 {
		return 0, errors.Errorf("block %q: want 16 hex characters, got %d", s, len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "block %q", s)
	}

	var v uint64
	for _, b := range raw {
		v = (v << 8) | uint64(b)
	}
	return v, nil
}

// parseKey decodes a 32-character hex string into the two 64-bit halves of
// a Midori-64 key.
func parseKey(s string) (k0, k1 uint64, err error) {
	s = strings.TrimSpace(s)
	if len(s) != 32 {
		return 0, 0, errors.Errorf("key %q: want 32 hex characters, got %d", s, len(s))
	}

	k0, err = parseBlock(s[:16])
	if err != nil {
		return 0, 0, errors.Wrap(err, "key high half")
	}
	k1, err = parseBlock(s[16:])
	if err != nil {
		return 0, 0, errors.Wrap(err, "key low half")
	}
	return k0, k1, nil
}

// formatBlock renders a 64-bit block as 16 lowercase hex characters.
func formatBlock(v uint64) string {
	buf := [8]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
	return hex.EncodeToString(buf[:])
}
