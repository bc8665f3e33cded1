package nibble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	for p := 0; p < 16; p++ {
		for v := uint64(0); v < 16; v++ {
			b := Write(0, p, v)
			require.Equal(t, v, Read(b, p), "position %d, value %d", p, v)
		}
	}
}

func TestReadThenWriteIsIdentity(t *testing.T) {
	b := uint64(0xCAD3EBF789150246)
	for p := 0; p < 16; p++ {
		v := Read(b, p)
		assert.Equal(t, b, Write(b, p, v), "position %d", p)
	}
}

func TestWriteLeavesOtherNibblesAlone(t *testing.T) {
	b := uint64(0x0123456789ABCDEF)
	changed := Write(b, 4, 0xF)
	for p := 0; p < 16; p++ {
		if p == 4 {
			assert.Equal(t, uint64(0xF), Read(changed, p))
			continue
		}
		assert.Equal(t, Read(b, p), Read(changed, p), "position %d", p)
	}
}
