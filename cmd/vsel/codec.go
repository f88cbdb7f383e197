package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpicht/vsel/lib/vsel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(g *globalFlags) *cobra.Command {
	var (
		full bool
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "encode <secret> [carrier]",
		Short: "Hide a secret in a carrier text",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			carrier := cfg.Carrier
			if len(args) == 2 {
				carrier = args[1]
			}
			if cmd.Flags().Changed("full") {
				cfg.FullTextPerChar = full
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			out := vsel.Encode(args[0], carrier, vsel.Options{
				FullTextPerChar: cfg.FullTextPerChar,
				Rand:            permuter(cfg.Seed),
			})
			logger.Debug("Encoded",
				zap.Int("secret_bytes", len(args[0])),
				zap.Int("carrier_runes", len([]rune(carrier))),
				zap.Bool("full", cfg.FullTextPerChar))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "repeat the whole secret after every carrier character")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed seed for the selector placement (0 = random)")
	return cmd
}

func newDecodeCmd(g *globalFlags) *cobra.Command {
	var (
		raw   bool
		strip bool
	)
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Reveal the secret hidden in a text (reads stdin without argument)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := g.setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
					return fmt.Errorf("no text given")
				}
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimSuffix(string(b), "\n")
			}

			var out string
			switch {
			case raw:
				out = hex.EncodeToString(vsel.Extract(text))
			case strip:
				out = vsel.Strip(text)
			default:
				out = vsel.Decode(text)
			}
			logger.Debug("Decoded", zap.Int("input_runes", len([]rune(text))), zap.Int("output_bytes", len(out)))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the hidden bytes as hex, without UTF-8 decoding or collapsing")
	cmd.Flags().BoolVar(&strip, "strip", false, "print the visible text with all selectors removed")
	return cmd
}
