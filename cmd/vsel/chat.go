package main

import (
	"bufio"
	"strings"

	"github.com/jpicht/vsel/lib/chat"
	"github.com/jpicht/vsel/lib/vsel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChatCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: `Answer encode "text" "secret" [full] / decode "text" commands read line by line`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			d := chat.NewDispatcher(logger, vsel.Options{
				FullTextPerChar: cfg.FullTextPerChar,
				Rand:            permuter(cfg.Seed),
			})
			replier := chat.WriterReplier{W: cmd.OutOrStdout()}

			s := bufio.NewScanner(cmd.InOrStdin())
			s.Buffer(make([]byte, 64*1024), 1024*1024)
			for s.Scan() {
				line := strings.TrimSpace(s.Text())
				if line == "" {
					continue
				}
				err := d.Handle(line, replier)
				if err == nil {
					continue
				}
				// parse errors have been answered with the usage text
				if _, ok := chatErrors[err]; !ok {
					return err
				}
				logger.Debug("Command rejected", zap.Error(err))
			}
			return s.Err()
		},
	}
}

var chatErrors = map[error]struct{}{
	chat.ERR_EMPTY_COMMAND:      {},
	chat.ERR_UNKNOWN_COMMAND:    {},
	chat.ERR_MISSING_ARGUMENT:   {},
	chat.ERR_INVALID_ARGUMENT:   {},
	chat.ERR_UNTERMINATED_QUOTE: {},
}
