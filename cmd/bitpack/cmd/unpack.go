package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xssnick/bitbuf/bitbuf"
	"github.com/xssnick/bitbuf/frame"
)

func newUnpackCmd(v *viper.Viper) *cobra.Command {
	unpackCmd := &cobra.Command{
		Use:   "unpack HEX LENGTH...",
		Short: "Read consecutive fields of given lengths from hex data",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("failed to decode data: %w", err)
			}

			var buf *bitbuf.BitBuffer
			if cfg.Frame {
				pub, err := parsePub(cfg.Pub)
				if err != nil {
					return err
				}

				if buf, err = frame.Open(data, pub); err != nil {
					return fmt.Errorf("failed to open frame: %w", err)
				}
			} else {
				buf = bitbuf.FromBytes(data)
			}
			defer buf.Release()

			rows := make([][]string, 0, len(args)-1)
			var cursor uint
			for i, arg := range args[1:] {
				sz, err := parseLength(arg)
				if err != nil {
					return fmt.Errorf("field %d: %w", i+1, err)
				}

				offset := cursor
				value, err := buf.GetAt(&cursor, sz)
				if err != nil {
					return fmt.Errorf("field %d: %w", i+1, err)
				}

				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					strconv.FormatUint(uint64(offset), 10),
					strconv.FormatUint(uint64(sz), 10),
					strconv.FormatUint(value, 10),
					fmt.Sprintf("%0*b", int(sz), value),
				})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "offset", "length", "value", "binary"})
			table.SetBorder(true)
			table.AppendBulk(rows)
			table.Render()

			if rest := buf.SizeBits(); cursor < rest {
				fmt.Fprintf(cmd.OutOrStdout(), "%d bits left\n", rest-cursor)
			}
			return nil
		},
	}

	flags := unpackCmd.Flags()
	flags.Bool("frame", false, "Treat data as a sealed frame")
	flags.String("pub", "", "Hex ed25519 public key the frame should be signed with")
	bindFlags(v, flags)

	return unpackCmd
}
