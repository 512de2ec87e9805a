package cmd

import (
	"encoding/hex"
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xssnick/bitbuf/bitbuf"
	"github.com/xssnick/bitbuf/frame"
)

const (
	formatHex   = "hex"
	formatBin   = "bin"
	formatBits  = "bits"
	formatFrame = "frame"
)

func newPackCmd(v *viper.Viper) *cobra.Command {
	packCmd := &cobra.Command{
		Use:   "pack FIELD...",
		Short: "Pack value:length fields into a bit stream",
		Long: `pack appends every field to the stream in order, for example

	bitpack pack 0b101:3 0xF0:8 1:1

Value should fit into its length, otherwise the command fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			buf := bitbuf.New(0)
			defer buf.Release()

			for i, arg := range args {
				value, sz, err := parseField(arg)
				if err != nil {
					return fmt.Errorf("field %d: %w", i+1, err)
				}

				if _, err = buf.Append(value, sz); err != nil {
					return fmt.Errorf("field %d (%s): %w", i+1, arg, err)
				}
			}

			out, err := render(buf, cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out)
			if cfg.Summary {
				fmt.Fprintf(w, "size: %d bits (%s)\n", buf.SizeBits(), bytefmt.ByteSize(uint64(bitbuf.BytesForBits(buf.SizeBits()))))
			}
			return nil
		},
	}

	flags := packCmd.Flags()
	flags.StringP("format", "f", formatHex, "Output format: hex, bin, bits or frame")
	flags.String("seed", "", "Hex ed25519 seed to sign frames with")
	flags.Bool("summary", false, "Print size of the packed data")
	bindFlags(v, flags)

	return packCmd
}

func render(buf *bitbuf.BitBuffer, cfg *Config) (string, error) {
	switch cfg.Format {
	case formatHex:
		return hex.EncodeToString(buf.Bytes()), nil
	case formatBin:
		return buf.String(), nil
	case formatBits:
		return buf.DumpBits(), nil
	case formatFrame:
		key, err := parseSeed(cfg.Seed)
		if err != nil {
			return "", err
		}

		data, err := frame.Seal(buf, key)
		if err != nil {
			return "", fmt.Errorf("failed to seal frame: %w", err)
		}
		return hex.EncodeToString(data), nil
	}
	return "", fmt.Errorf("unknown format %q", cfg.Format)
}
