package cli

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// collectBlocks returns the hex blocks given explicitly via flagValues, or,
// if none were given, tokenizes one hex block per non-empty line read from
// r. This is the parser/driver split the core requires: by the time a block
// sequence reaches cofb.Encrypt or cofb.Decrypt, it is already tokenized.
func collectBlocks(flagValues []string, r io.Reader) ([]uint64, error) {
	hexBlocks := flagValues
	if len(hexBlocks) == 0 {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			hexBlocks = append(hexBlocks, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "scanning stdin")
		}
	}

	blocks := make([]uint64, 0, len(hexBlocks))
	for _, h := range hexBlocks {
		v, err := parseBlock(h)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, v)
	}
	return blocks, nil
}
