// Package cli implements the cofbmidori command-line collaborator: it parses
// a hex key, nonce, and plaintext blocks, drives the cofb package through an
// encrypt-then-decrypt round trip, and prints the K:/N:/C:/T:/T_: lines the
// reference driver prints. None of the cryptographic logic lives here; this
// package is purely the parser/driver boundary the core requires.
package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coredrift/midori-cofb/cofb"
)

// NewRootCommand builds the cofbmidori command.
func NewRootCommand() *cobra.Command {
	var (
		keyHex       string
		nonceHex     string
		plaintextHex []string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:          "cofbmidori",
		Short:        "Midori-64/COFB authenticated encryption demo driver",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			defer logger.Sync() //nolint:errcheck

			k0, k1, err := parseKey(keyHex)
			if err != nil {
				return errors.Wrap(err, "parsing key")
			}
			nonce, err := parseBlock(nonceHex)
			if err != nil {
				return errors.Wrap(err, "parsing nonce")
			}

			blocks, err := collectBlocks(plaintextHex, cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "reading plaintext blocks")
			}
			if len(blocks) != 1 {
				return errors.Errorf("expected exactly one plaintext block, got %d", len(blocks))
			}

			logger.Debug("encrypting", zap.Uint64("nonce", nonce))
			ciphertext, tag := cofb.Encrypt(k0, k1, nonce, blocks)

			logger.Debug("decrypting for self-check")
			plaintext, computedTag := cofb.Decrypt(k0, k1, nonce, ciphertext, tag)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "K: %s%s\n", formatBlock(k0), formatBlock(k1))
			fmt.Fprintf(out, "N: %s\n", formatBlock(nonce))
			for _, c := range ciphertext {
				fmt.Fprintf(out, "C: %s\n", formatBlock(c))
			}
			fmt.Fprintf(out, "T: %s\n", formatBlock(tag))
			fmt.Fprintf(out, "T_: %s\n", formatBlock(computedTag))

			match := cofb.ConstantTimeEqual(tag, computedTag)
			logger.Debug("tag check", zap.Bool("match", match), zap.Bool("plaintext-recovered", plaintext[0] == blocks[0]))

			if !match {
				return errors.New("computed tag does not match the tag produced by encrypt")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "128-bit key, 32 hex characters")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "64-bit nonce, 16 hex characters")
	cmd.Flags().StringArrayVar(&plaintextHex, "plaintext", nil, "64-bit plaintext block, 16 hex characters (repeatable; defaults to one block per stdin line)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagRequired("key")   //nolint:errcheck
	cmd.MarkFlagRequired("nonce") //nolint:errcheck

	return cmd
}
