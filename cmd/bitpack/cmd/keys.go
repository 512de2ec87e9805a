package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/spf13/cobra"
)

func parseSeed(s string) (ed25519.PrivateKey, error) {
	if s == "" {
		return nil, nil
	}

	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed should be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func parsePub(s string) (ed25519.PublicKey, error) {
	if s == "" {
		return nil, nil
	}

	pub, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	return pub, nil
}

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate ed25519 seed and public key for signed frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, key, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "seed:", hex.EncodeToString(key.Seed()))
			fmt.Fprintln(w, "pub: ", hex.EncodeToString(pub))
			return nil
		},
	}
}
