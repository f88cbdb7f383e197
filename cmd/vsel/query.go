package main

import (
	"fmt"

	"github.com/jpicht/vsel/lib/dnsplugin"
	"github.com/jpicht/vsel/lib/vsel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newQueryCmd(g *globalFlags) *cobra.Command {
	var (
		resolver string
		suffix   string
		verify   bool
	)
	cmd := &cobra.Command{
		Use:   "query <secret> [carrier]",
		Short: "Let a vsel DNS responder encode the secret",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("resolver") {
				cfg.Resolver = resolver
			}
			if cmd.Flags().Changed("suffix") {
				cfg.Suffix = suffix
			}
			carrier := ""
			if len(args) == 2 {
				carrier = args[1]
			}

			c := dnsplugin.Client{Resolver: cfg.Resolver, Suffix: cfg.Suffix, Timeout: cfg.Timeout}
			logger.Debug("Querying", zap.String("resolver", cfg.Resolver), zap.String("suffix", cfg.Suffix))

			out, err := c.Query(cmd.Context(), carrier, args[0])
			if err != nil {
				return err
			}
			if verify && vsel.Decode(out) != args[0] {
				return fmt.Errorf("verification failed: answer does not decode to the secret")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&resolver, "resolver", "", "DNS server address (host:port)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "zone served by the vsel plugin")
	cmd.Flags().BoolVar(&verify, "verify", false, "decode the answer and compare it to the secret")
	return cmd
}
