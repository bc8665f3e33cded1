// Command cofbmidori drives the Midori-64/COFB engine from the command
// line: it parses a hex key, nonce and plaintext block, encrypts, decrypts
// the result as a self-check, and prints the K:/N:/C:/T:/T_: lines.
package main

import (
	"fmt"
	"os"

	"github.com/coredrift/midori-cofb/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cofbmidori:", err)
		os.Exit(1)
	}
}
